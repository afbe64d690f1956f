package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractText(filename string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

type stubModel struct {
	response string
	err      error
	delay    time.Duration
}

func (s *stubModel) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	return s.GenerateTextWithRetry(ctx, prompt, temperature, 1)
}

func (s *stubModel) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.delay):
		}
	}
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

const stubModelResponse = "```json\n" + `{
	"summary": "Backend engineer with **8 years** of experience",
	"personalDetails": {
		"fullname": "Jane Doe",
		"phoneNumber": "+62 812 0000 0000",
		"address": "Jakarta, Indonesia",
		"email": "jane@example.com"
	},
	"socials": [
		{"icon": null, "link": "https://github.com/janedoe"}
	],
	"education": [
		{
			"degree": "BSc Computer Science",
			"school": "Example University",
			"startDate": "2012",
			"endDate": "2016",
			"city": "Bandung",
			"GPA": "3.8",
			"description": null
		}
	],
	"languages": [
		{"language": "English", "proficiency": null}
	],
	"skills": [
		{"skillCategory": "Backend", "listOfSkill": "Go, PostgreSQL, Redis"}
	],
	"works": [
		{
			"companyName": "Acme Corp",
			"position": "Senior Engineer",
			"location": "Jakarta",
			"startDate": "January 2020",
			"endDate": "Present",
			"description": "- Built services\n- Led a team"
		}
	],
	"projects": [],
	"certification": [],
	"organization": [],
	"award": []
}` + "\n```"

func newTestParser(extractor DocumentExtractor, model StructuringModel, timeout time.Duration) CVParserService {
	return NewCVParserService(extractor, model, timeout, 1, 0.3)
}

func TestParseCVSuccess(t *testing.T) {
	parser := newTestParser(
		&stubExtractor{text: "Jane Doe\nBackend engineer..."},
		&stubModel{response: stubModelResponse},
		time.Second,
	)

	cv, err := parser.ParseCV(context.Background(), "resume.pdf", []byte("%PDF"))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", cv.PersonalDetails.Fullname)
	assert.Equal(t, "jane@example.com", cv.PersonalDetails.Email)
	assert.Equal(t, "Backend engineer with <strong>8 years</strong> of experience", cv.Summary)

	require.Len(t, cv.Socials, 1)
	assert.Equal(t, "github", cv.Socials[0].Icon)

	require.Len(t, cv.Education, 1)
	require.NotNil(t, cv.Education[0].GPA)
	assert.InDelta(t, 3.8, *cv.Education[0].GPA, 0.001)
	require.NotNil(t, cv.Education[0].StartDate)
	assert.Equal(t, 2012, cv.Education[0].StartDate.Year())

	require.Len(t, cv.Languages, 1)
	assert.Equal(t, "Not specified", cv.Languages[0].Proficiency)

	require.Len(t, cv.Works, 1)
	work := cv.Works[0]
	assert.True(t, work.IsCurrentWorking)
	assert.Nil(t, work.EndDate)
	assert.Equal(t, "<ul><li>Built services</li><br><li>Led a team</li></ul>", work.Description)

	assert.NotNil(t, cv.Projects)
	assert.Empty(t, cv.Projects)
}

func TestParseCVProcessingTimes(t *testing.T) {
	parser := newTestParser(
		&stubExtractor{text: "some text"},
		&stubModel{response: stubModelResponse, delay: 30 * time.Millisecond},
		time.Second,
	)

	cv, err := parser.ParseCV(context.Background(), "resume.pdf", nil)
	require.NoError(t, err)

	sum := cv.ProcessingTimes.TextExtraction + cv.ProcessingTimes.Parsing
	assert.LessOrEqual(t, math.Abs(cv.ProcessingTimes.Total-sum), 0.03,
		"total should be close to extraction + parsing")
	assert.GreaterOrEqual(t, cv.ProcessingTimes.Total, cv.ProcessingTimes.Parsing)
}

func TestParseCVExtractionFailure(t *testing.T) {
	parser := newTestParser(
		&stubExtractor{err: ErrExtraction},
		&stubModel{response: stubModelResponse},
		time.Second,
	)

	_, err := parser.ParseCV(context.Background(), "resume.pdf", nil)
	assert.True(t, errors.Is(err, ErrExtraction))
}

func TestParseCVModelFailure(t *testing.T) {
	parser := newTestParser(
		&stubExtractor{text: "some text"},
		&stubModel{err: errors.New("model unavailable")},
		time.Second,
	)

	_, err := parser.ParseCV(context.Background(), "resume.pdf", nil)
	assert.True(t, errors.Is(err, ErrStructuring))
}

func TestParseCVMalformedModelOutput(t *testing.T) {
	parser := newTestParser(
		&stubExtractor{text: "some text"},
		&stubModel{response: "this is not JSON"},
		time.Second,
	)

	_, err := parser.ParseCV(context.Background(), "resume.pdf", nil)
	assert.True(t, errors.Is(err, ErrStructuring))
}

func TestParseCVModelTimeout(t *testing.T) {
	parser := newTestParser(
		&stubExtractor{text: "some text"},
		&stubModel{response: stubModelResponse, delay: 5 * time.Second},
		50*time.Millisecond,
	)

	start := time.Now()
	_, err := parser.ParseCV(context.Background(), "resume.pdf", nil)
	elapsed := time.Since(start)

	assert.True(t, errors.Is(err, ErrStructuring))
	assert.Less(t, elapsed, time.Second, "timeout must bound the request, not the model's whim")
}

func TestExtractTextRejectsUnknownExtension(t *testing.T) {
	extractor := NewDocumentExtractor()

	_, err := extractor.ExtractText("resume.rtf", []byte("{\\rtf1}"))
	assert.True(t, errors.Is(err, ErrExtraction))
}

func TestExtractTextCorruptPDF(t *testing.T) {
	extractor := NewDocumentExtractor()

	_, err := extractor.ExtractText("resume.pdf", []byte("definitely not a pdf"))
	assert.True(t, errors.Is(err, ErrExtraction))
}

func TestExtractTextCorruptDocx(t *testing.T) {
	extractor := NewDocumentExtractor()

	_, err := extractor.ExtractText("resume.docx", []byte("definitely not a zip archive"))
	assert.True(t, errors.Is(err, ErrExtraction))
}
