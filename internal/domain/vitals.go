package domain

// VitalSigns holds the six values collected by the form. Values are opaque
// strings forwarded verbatim into the prompt; nothing is parsed as a number.
type VitalSigns struct {
	Pulse       string `json:"pulse" form:"pulse"`
	HRV         string `json:"hrv" form:"hrv"`
	SpO2        string `json:"spo2" form:"spo2"`
	Pressure    string `json:"pressure" form:"pressure"`
	Temperature string `json:"temperature" form:"temperature"`
	Description string `json:"description" form:"description"`
}

// VitalField pairs a form label with its value.
type VitalField struct {
	Key   string
	Label string
	Value string
}

// Fields returns the vitals in form order with their prompt labels.
func (v VitalSigns) Fields() []VitalField {
	return []VitalField{
		{Key: "pulse", Label: LabelPulse, Value: v.Pulse},
		{Key: "hrv", Label: LabelHRV, Value: v.HRV},
		{Key: "spo2", Label: LabelSpO2, Value: v.SpO2},
		{Key: "pressure", Label: LabelPressure, Value: v.Pressure},
		{Key: "temperature", Label: LabelTemperature, Value: v.Temperature},
		{Key: "description", Label: LabelDescription, Value: v.Description},
	}
}

// Validate reports an IncompleteInputError naming every empty field.
// Whitespace-only values count as filled.
func (v VitalSigns) Validate() error {
	var missing []string
	for _, f := range v.Fields() {
		if f.Value == "" {
			missing = append(missing, f.Key)
		}
	}
	if len(missing) > 0 {
		return &IncompleteInputError{Missing: missing}
	}
	return nil
}
