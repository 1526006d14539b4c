package engine

// Params tunes the physics. Zero fields take the defaults in
// DefaultParams.
type Params struct {
	Repulsion          float64 // many-body strength per pixel of radius
	RepulsionPower     float64 // strength is divided by N^RepulsionPower
	MaxRepulsionLength float64 // many-body cutoff as a share of min(width, height)
	VelocityDecay      float64
	RestartAlpha       float64 // alpha after an update
	DragAlpha          float64 // alpha target while dragging
	DistMultiplier     float64 // link rest distance = DistMultiplier*(rs+rt) + DistExtra
	DistExtra          float64
	Theta              float64 // Barnes-Hut opening angle
	PositionStrength   float64 // pull toward the viewport center
	Padding            float64 // boundary clamp margin in screen pixels
	Band               BandParams
}

// BandParams configures the banded collision force.
type BandParams struct {
	Disabled bool
	Padding  float64
	Repel    float64
	Attract  float64
	Outer    float64
}

// DefaultParams are the stock physics parameters.
var DefaultParams = Params{
	Repulsion:          -80,
	RepulsionPower:     0.3,
	MaxRepulsionLength: 0.25,
	VelocityDecay:      0.8,
	RestartAlpha:       0.5,
	DragAlpha:          0.3,
	DistMultiplier:     1,
	DistExtra:          0,
	Theta:              0.9,
	PositionStrength:   0.1,
	Padding:            2,
	Band: BandParams{
		Padding: 2,
		Repel:   0.7,
		Attract: 0.01,
		Outer:   20,
	},
}

func (p Params) withDefaults() Params {
	d := DefaultParams
	def := func(v *float64, dv float64) {
		if *v == 0 {
			*v = dv
		}
	}
	def(&p.Repulsion, d.Repulsion)
	def(&p.RepulsionPower, d.RepulsionPower)
	def(&p.MaxRepulsionLength, d.MaxRepulsionLength)
	def(&p.VelocityDecay, d.VelocityDecay)
	def(&p.RestartAlpha, d.RestartAlpha)
	def(&p.DragAlpha, d.DragAlpha)
	def(&p.DistMultiplier, d.DistMultiplier)
	def(&p.Theta, d.Theta)
	def(&p.PositionStrength, d.PositionStrength)
	def(&p.Padding, d.Padding)
	def(&p.Band.Padding, d.Band.Padding)
	def(&p.Band.Repel, d.Band.Repel)
	def(&p.Band.Attract, d.Band.Attract)
	def(&p.Band.Outer, d.Band.Outer)
	return p
}
