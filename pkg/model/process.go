package model

// Status is the reported state of a production step. Only "Running" is
// treated as running; every other value classifies as stopped.
type Status string

const (
	StatusRunning Status = "Running"
	StatusStopped Status = "Stopped"
)

func (s Status) IsRunning() bool {
	return s == StatusRunning
}

// ProcessRecord is one station of the production line as it was reported.
// Optional fields are nil when the source did not carry them.
type ProcessRecord struct {
	Step   string `json:"step" yaml:"step" toml:"step"`
	Status Status `json:"status" yaml:"status" toml:"status"`

	Lot   *int `json:"lot,omitempty" yaml:"lot,omitempty" toml:"lot,omitempty"`
	Units *int `json:"units,omitempty" yaml:"units,omitempty" toml:"units,omitempty"`

	// Hours. Expected to be present together.
	RunTime      *float64 `json:"run_time,omitempty" yaml:"run_time,omitempty" toml:"run_time,omitempty"`
	ExpectedTime *float64 `json:"expected_time,omitempty" yaml:"expected_time,omitempty" toml:"expected_time,omitempty"`

	// Percentages, taken as given. They are not normalized against each other.
	Downtime     float64  `json:"downtime" yaml:"downtime" toml:"downtime"`
	FailureRate  *float64 `json:"failure_rate,omitempty" yaml:"failure_rate,omitempty" toml:"failure_rate,omitempty"`
	Availability float64  `json:"availability" yaml:"availability" toml:"availability"`
	Performance  float64  `json:"performance" yaml:"performance" toml:"performance"`
	Quality      float64  `json:"quality" yaml:"quality" toml:"quality"`
	OEE          float64  `json:"oee" yaml:"oee" toml:"oee"`

	// Kilograms.
	MaterialUsed  *float64 `json:"material_used,omitempty" yaml:"material_used,omitempty" toml:"material_used,omitempty"`
	WasteMaterial *float64 `json:"waste_material,omitempty" yaml:"waste_material,omitempty" toml:"waste_material,omitempty"`
}

func (p ProcessRecord) LotID() (int, bool) { return derefInt(p.Lot) }
func (p ProcessRecord) UnitCount() (int, bool) { return derefInt(p.Units) }

func (p ProcessRecord) Failure() (float64, bool) { return derefFloat(p.FailureRate) }

// Runtime returns both runtime fields, ok only when both are present.
func (p ProcessRecord) Runtime() (run, expected float64, ok bool) {
	if p.RunTime == nil || p.ExpectedTime == nil {
		return 0, 0, false
	}
	return *p.RunTime, *p.ExpectedTime, true
}

// RuntimeInconsistent reports a record carrying only one of the two
// runtime fields.
func (p ProcessRecord) RuntimeInconsistent() bool {
	return (p.RunTime == nil) != (p.ExpectedTime == nil)
}

// MaterialState separates a missing material report from a confirmed zero.
type MaterialState int

const (
	MaterialAbsent MaterialState = iota
	MaterialZero
	MaterialPresent
)

func (s MaterialState) String() string {
	switch s {
	case MaterialZero:
		return "zero"
	case MaterialPresent:
		return "present"
	default:
		return "absent"
	}
}

// Material is the material usage of a step with its data state.
type Material struct {
	State MaterialState
	Used  float64
	Waste float64
}

// Material classifies the material fields. Either amount missing makes the
// whole report absent; either amount exactly zero makes it zero.
func (p ProcessRecord) Material() Material {
	if p.MaterialUsed == nil || p.WasteMaterial == nil {
		return Material{State: MaterialAbsent}
	}
	m := Material{Used: *p.MaterialUsed, Waste: *p.WasteMaterial, State: MaterialPresent}
	if m.Used == 0 || m.Waste == 0 {
		m.State = MaterialZero
	}
	return m
}

func derefInt(v *int) (int, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

func derefFloat(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

// Int and Float build optional field values.
func Int(v int) *int { return &v }

func Float(v float64) *float64 { return &v }
