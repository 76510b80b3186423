package schema

// Built-in encoding schemas. Field order here reproduces the exact column
// order each artifact was trained with; reordering silently corrupts
// every probability the model emits.

// breastFeatures is the canonical WDBC feature order.
var breastFeatures = []string{
	"radius_mean", "texture_mean", "perimeter_mean", "area_mean",
	"smoothness_mean", "compactness_mean", "concavity_mean",
	"concave_points_mean", "symmetry_mean", "fractal_dimension_mean",
	"radius_se", "texture_se", "perimeter_se", "area_se",
	"smoothness_se", "compactness_se", "concavity_se",
	"concave_points_se", "symmetry_se", "fractal_dimension_se",
	"radius_worst", "texture_worst", "perimeter_worst", "area_worst",
	"smoothness_worst", "compactness_worst", "concavity_worst",
	"concave_points_worst", "symmetry_worst", "fractal_dimension_worst",
}

func breastSchema() *EncodingSchema {
	fields := make([]FieldSpec, 0, len(breastFeatures))
	targets := make([]Target, 0, len(breastFeatures))
	for _, name := range breastFeatures {
		fields = append(fields, FieldSpec{Name: name, Kind: Numeric, Required: true})
		targets = append(targets, Target{Field: name, Synonyms: []string{synonymFor(name)}})
	}
	return &EncodingSchema{Model: "breast", Fields: fields, Targets: targets}
}

func lungSchema() *EncodingSchema {
	return &EncodingSchema{
		Model: "lung",
		Fields: []FieldSpec{
			{Name: "age", Kind: Numeric},
			{Name: "pack_years", Kind: Numeric},
			{Name: "cumulative_smoking", Kind: Derived, Inputs: []string{"age", "pack_years"}},
			{Name: "gender", Kind: OneHot, Categories: []string{"Male"}},
			{Name: "radon_exposure", Kind: OneHot, Categories: []string{"High", "Low"}},
			{Name: "asbestos_exposure", Kind: OneHot, Categories: []string{"Yes"}},
			{Name: "secondhand_smoke_exposure", Kind: OneHot, Categories: []string{"Yes"}},
			{Name: "copd_diagnosis", Kind: OneHot, Categories: []string{"Yes"}},
			{Name: "alcohol_consumption", Kind: OneHot, Categories: []string{"Moderate"}},
		},
		Targets: []Target{
			{Field: "age", Synonyms: []string{"Age", "Patient Age"}},
			{Field: "pack_years", Synonyms: []string{"Pack Years", "Smoking History"}},
		},
	}
}

func colorectalSchema() *EncodingSchema {
	return &EncodingSchema{
		Model: "colorectal",
		Fields: []FieldSpec{
			{Name: "Age", Kind: Numeric},
			{Name: "Gender", Kind: Ordinal, Labels: map[string]int{"Male": 1, "Female": 0}},
			{Name: "BMI", Kind: Numeric},
			{Name: "Lifestyle", Kind: Ordinal, Labels: map[string]int{"Sedentary": 0, "Moderate": 1, "Active": 2}},
			{Name: "Ethnicity", Kind: Ordinal, Labels: map[string]int{
				"African": 0, "Asian": 1, "Caucasian": 2, "Hispanic": 3, "Other": 4,
			}},
			{Name: "Family_History_CRC", Kind: Ordinal, Labels: map[string]int{"Yes": 1, "No": 0}},
			{Name: "Pre-existing Conditions", Kind: Ordinal, Labels: map[string]int{
				"Diabetes": 0, "None": 1, "Other": 2,
			}},
			{Name: "Carbohydrates (g)", Kind: Numeric},
			{Name: "Proteins (g)", Kind: Numeric},
			{Name: "Fats (g)", Kind: Numeric},
			{Name: "Vitamin A (IU)", Kind: Numeric},
			{Name: "Vitamin C (mg)", Kind: Numeric},
			{Name: "Iron (mg)", Kind: Numeric},
		},
		Targets: []Target{
			{Field: "Age", Synonyms: []string{"Age", "Patient Age"}},
			{Field: "BMI", Synonyms: []string{"BMI", "Body Mass Index"}},
			{Field: "Carbohydrates (g)", Synonyms: []string{"Carbohydrates"}},
			{Field: "Proteins (g)", Synonyms: []string{"Proteins", "Protein Intake"}},
			{Field: "Fats (g)", Synonyms: []string{"Fats", "Fat Intake"}},
			{Field: "Vitamin A (IU)", Synonyms: []string{"Vitamin A"}},
			{Field: "Vitamin C (mg)", Synonyms: []string{"Vitamin C"}},
			{Field: "Iron (mg)", Synonyms: []string{"Iron"}},
		},
	}
}
