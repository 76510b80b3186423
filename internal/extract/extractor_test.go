package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oncoserve/internal/domain"
	"oncoserve/internal/extract"
)

func TestExtract_LabeledValueOnSameLine(t *testing.T) {
	e := extract.New(extract.DefaultThreshold)

	got := e.Extract("Patient Age: 55 years old", []domain.ExtractionTarget{
		{Field: "age", Synonyms: []string{"Age", "Patient Age"}},
	})

	require.NotNil(t, got["age"])
	assert.Equal(t, 55.0, *got["age"])
}

func TestExtract_LastNumberWins(t *testing.T) {
	e := extract.New(extract.DefaultThreshold)

	// Labels precede values; the last numeric token is the value even
	// when an incidental number leads the line.
	got := e.Extract("Smoking History: 20 Pack Years", []domain.ExtractionTarget{
		{Field: "pack_years", Synonyms: []string{"Pack Years"}},
	})

	require.NotNil(t, got["pack_years"])
	assert.Equal(t, 20.0, *got["pack_years"])
}

func TestExtract_NoMatchIsAbsentNotZero(t *testing.T) {
	e := extract.New(extract.DefaultThreshold)

	got := e.Extract("Notes: patient shows fatigue", []domain.ExtractionTarget{
		{Field: "BMI", Synonyms: []string{"BMI"}},
	})

	val, present := got["BMI"]
	assert.True(t, present, "target is reported even without a match")
	assert.Nil(t, val, "weak evidence must yield absence, not zero")
}

func TestExtract_MultiLineDocument(t *testing.T) {
	e := extract.New(extract.DefaultThreshold)

	text := "Medical Laboratory Report\n" +
		"Patient Name: John Doe\n" +
		"Patient Age: 55 years old\n" +
		"Smoking History: 20 Pack Years\n" +
		"Notes: Patient shows signs of fatigue.\n"

	got := e.Extract(text, []domain.ExtractionTarget{
		{Field: "age", Synonyms: []string{"Age", "Patient Age"}},
		{Field: "pack_years", Synonyms: []string{"Pack Years", "Smoking History"}},
		{Field: "BMI", Synonyms: []string{"BMI", "Body Mass Index"}},
	})

	require.NotNil(t, got["age"])
	assert.Equal(t, 55.0, *got["age"])
	require.NotNil(t, got["pack_years"])
	assert.Equal(t, 20.0, *got["pack_years"])
	assert.Nil(t, got["BMI"])
}

func TestExtract_TieKeepsFirstSeenLine(t *testing.T) {
	e := extract.New(extract.DefaultThreshold)

	// Both lines contain the synonym verbatim, so both score 100; the
	// earlier line must win.
	text := "Patient Age: 61\nPatient Age: 99"
	got := e.Extract(text, []domain.ExtractionTarget{
		{Field: "age", Synonyms: []string{"Patient Age"}},
	})

	require.NotNil(t, got["age"])
	assert.Equal(t, 61.0, *got["age"])
}

func TestExtract_MatchIsCaseInsensitive(t *testing.T) {
	e := extract.New(extract.DefaultThreshold)

	got := e.Extract("PATIENT AGE: 47", []domain.ExtractionTarget{
		{Field: "age", Synonyms: []string{"Patient Age"}},
	})

	require.NotNil(t, got["age"])
	assert.Equal(t, 47.0, *got["age"])
}

func TestExtract_DecimalAndSignedValues(t *testing.T) {
	e := extract.New(extract.DefaultThreshold)

	got := e.Extract("BMI: 27.4", []domain.ExtractionTarget{
		{Field: "BMI", Synonyms: []string{"BMI"}},
	})

	require.NotNil(t, got["BMI"])
	assert.Equal(t, 27.4, *got["BMI"])
}

func TestExtract_MatchedLineWithoutNumberIsAbsent(t *testing.T) {
	e := extract.New(extract.DefaultThreshold)

	got := e.Extract("Radon Exposure: High Level Detected", []domain.ExtractionTarget{
		{Field: "radon", Synonyms: []string{"Radon Exposure"}},
	})

	assert.Nil(t, got["radon"])
}

func TestConfidence_KeywordPrecheck(t *testing.T) {
	hits, ok := extract.Confidence("Medical Laboratory Report\nPatient Age: 55")
	assert.True(t, ok)
	assert.GreaterOrEqual(t, hits, 2)

	_, ok = extract.Confidence("grocery list: eggs, milk")
	assert.False(t, ok, "non-clinical text should be flagged low confidence")
}
