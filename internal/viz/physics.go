package viz

// Physics holds the vis-network layout simulation tunables. The zero value
// is not useful; start from DefaultPhysics.
type Physics struct {
	GravitationalConstant   float64 `json:"gravitational_constant" yaml:"gravitational_constant"`
	CentralGravity          float64 `json:"central_gravity" yaml:"central_gravity"`
	SpringLength            float64 `json:"spring_length" yaml:"spring_length"`
	SpringConstant          float64 `json:"spring_constant" yaml:"spring_constant"`
	SpringStrength          float64 `json:"spring_strength" yaml:"spring_strength"`
	Damping                 float64 `json:"damping" yaml:"damping"`
	StabilizationIterations int     `json:"stabilization_iterations" yaml:"stabilization_iterations"`
}

// DefaultPhysics returns the tuned barnesHut parameters. The large repulsion
// and spring length keep the dense descriptor clusters readable.
func DefaultPhysics() Physics {
	return Physics{
		GravitationalConstant:   -100000,
		CentralGravity:          0.02,
		SpringLength:            1000,
		SpringConstant:          0.02,
		SpringStrength:          0.02,
		Damping:                 0.3,
		StabilizationIterations: 2000,
	}
}
