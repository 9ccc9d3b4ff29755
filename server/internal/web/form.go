package web

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/healthtech/healthtech/pkg/types"
)

// Form field names, shared with the template.
const (
	fieldName          = "name"
	fieldAge           = "age"
	fieldGender        = "gender"
	fieldWeight        = "weight_kg"
	fieldHeight        = "height_cm"
	fieldHeartRate     = "heart_rate"
	fieldBloodPressure = "blood_pressure"
	fieldSugar         = "sugar"
	fieldTemperature   = "temperature_c"
	fieldPulse         = "pulse"
)

// defaultForm holds the initial input values: the minimum of each range.
var defaultForm = map[string]string{
	fieldName:          "",
	fieldAge:           "1",
	fieldGender:        types.GenderMale,
	fieldWeight:        "1.0",
	fieldHeight:        "30.0",
	fieldHeartRate:     "1",
	fieldBloodPressure: "1",
	fieldSugar:         "1",
	fieldTemperature:   "20.0",
	fieldPulse:         "1",
}

// parseForm converts submitted form values into a Reading. Fields that are
// not numbers are reported in the returned map; range checks are left to
// the submitter.
func parseForm(v url.Values) (types.Reading, map[string]string) {
	errs := make(map[string]string)

	atoi := func(field string) int {
		n, err := strconv.Atoi(strings.TrimSpace(v.Get(field)))
		if err != nil {
			errs[field] = "must be a whole number"
		}
		return n
	}
	atof := func(field string) float64 {
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Get(field)), 64)
		if err != nil {
			errs[field] = "must be a number"
		}
		return f
	}

	r := types.Reading{
		Name:          strings.TrimSpace(v.Get(fieldName)),
		Age:           atoi(fieldAge),
		Gender:        v.Get(fieldGender),
		WeightKg:      atof(fieldWeight),
		HeightCm:      atof(fieldHeight),
		HeartRate:     atoi(fieldHeartRate),
		BloodPressure: atoi(fieldBloodPressure),
		Sugar:         atoi(fieldSugar),
		TemperatureC:  atof(fieldTemperature),
		Pulse:         atoi(fieldPulse),
	}
	return r, errs
}

// formValues returns the values to pre-fill the inputs with.
func formValues(v url.Values) map[string]string {
	out := make(map[string]string, len(defaultForm))
	for k, def := range defaultForm {
		if v.Has(k) {
			out[k] = v.Get(k)
			continue
		}
		out[k] = def
	}
	return out
}
