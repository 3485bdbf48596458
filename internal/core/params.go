package core

// ParamType enumerates supported parameter value kinds, for display to a
// human. The preview overlay does not use these types; it reads ui.Info.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single read-only value to surface to a human.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures a point-in-time description of a run's
// configuration and derived values. Unlike the
// teacher's version there is no ParameterControl/Setter pairing: a
// giftorio run's configuration is fixed for the whole invocation, so there
// is nothing to adjust interactively mid-run.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}
