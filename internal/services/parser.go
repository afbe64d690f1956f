package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"alfredoptarigan/cv-parser/internal/models"
)

// CVParserService orchestrates a single parse request:
// extract text, structure it with the model, shape the response.
type CVParserService interface {
	ParseCV(ctx context.Context, filename string, data []byte) (*models.ParsedCV, error)
}

type cvParserService struct {
	extractor     DocumentExtractor
	model         StructuringModel
	promptBuilder *PromptBuilder
	modelTimeout  time.Duration
	maxRetries    int
	temperature   float32
}

func NewCVParserService(
	extractor DocumentExtractor,
	model StructuringModel,
	modelTimeout time.Duration,
	maxRetries int,
	temperature float32,
) CVParserService {
	return &cvParserService{
		extractor:     extractor,
		model:         model,
		promptBuilder: NewPromptBuilder(),
		modelTimeout:  modelTimeout,
		maxRetries:    maxRetries,
		temperature:   temperature,
	}
}

// ParseCV implements CVParserService. On any stage failure the request fails
// cleanly; a partially-filled CV is never returned.
func (s *cvParserService) ParseCV(ctx context.Context, filename string, data []byte) (*models.ParsedCV, error) {
	start := time.Now()

	text, err := s.extractor.ExtractText(filename, data)
	if err != nil {
		return nil, err
	}
	extractionTime := time.Since(start)

	prompt := s.promptBuilder.BuildCVExtractionPrompt(CleanText(text))

	// The model call is bounded; a hung upstream fails the request instead
	// of holding it open.
	modelCtx, cancel := context.WithTimeout(ctx, s.modelTimeout)
	defer cancel()

	parseStart := time.Now()
	response, err := s.model.GenerateTextWithRetry(modelCtx, prompt, s.temperature, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStructuring, err)
	}

	var raw rawCV
	if err := json.Unmarshal([]byte(CleanJSON(response)), &raw); err != nil {
		return nil, fmt.Errorf("%w: malformed model output: %v", ErrStructuring, err)
	}
	parseTime := time.Since(parseStart)

	cv := shapeCV(&raw)
	cv.ProcessingTimes = models.ProcessingTimes{
		TextExtraction: roundSeconds(extractionTime),
		Parsing:        roundSeconds(parseTime),
		Total:          roundSeconds(time.Since(start)),
	}

	return cv, nil
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}

// Raw model-output types. Dates stay strings here; shaping parses them.
type rawCV struct {
	Summary         string             `json:"summary"`
	PersonalDetails rawPersonalDetails `json:"personalDetails"`
	Socials         []rawSocial        `json:"socials"`
	Education       []rawEducation     `json:"education"`
	Languages       []rawLanguage      `json:"languages"`
	Skills          []rawSkill         `json:"skills"`
	Works           []rawWork          `json:"works"`
	Projects        []rawProject       `json:"projects"`
	Certification   []rawCertification `json:"certification"`
	Organization    []rawOrganization  `json:"organization"`
	Award           []rawAward         `json:"award"`
}

type rawPersonalDetails struct {
	Fullname    string `json:"fullname"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Email       string `json:"email"`
}

type rawSocial struct {
	Icon string `json:"icon"`
	Link string `json:"link"`
}

type rawEducation struct {
	Degree      string    `json:"degree"`
	School      string    `json:"school"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	SchoolLink  string    `json:"schoolLink"`
	City        string    `json:"city"`
	GPA         flexFloat `json:"GPA"`
	Description string    `json:"description"`
}

type rawLanguage struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

type rawSkill struct {
	SkillCategory string `json:"skillCategory"`
	ListOfSkill   string `json:"listOfSkill"`
}

type rawWork struct {
	CompanyName string `json:"companyName"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type rawProject struct {
	Name        string `json:"name"`
	Link        string `json:"link"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type rawCertification struct {
	CertificationName   string `json:"certificationName"`
	IssuingOrganization string `json:"issuingOrganization"`
	IssuedDate          string `json:"issuedDate"`
	CertificationLink   string `json:"certificationLink"`
	CredentialID        string `json:"credentialId"`
}

type rawOrganization struct {
	Name        string `json:"name"`
	Position    string `json:"position"`
	Address     string `json:"address"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type rawAward struct {
	AwardTitle     string `json:"awardTitle"`
	AwardTitleLink string `json:"awardTitleLink"`
	Issuer         string `json:"issuer"`
	IssuedDate     string `json:"issuedDate"`
	Description    string `json:"description"`
}

// flexFloat tolerates both numeric and quoted GPA values in model output.
type flexFloat struct {
	Value *float64
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	trimmed := strings.Trim(string(data), `"`)
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		// Non-numeric GPA ("3.8/4.0" and friends) is dropped, not fatal
		return nil
	}

	f.Value = &v
	return nil
}

func shapeCV(raw *rawCV) *models.ParsedCV {
	cv := &models.ParsedCV{
		Summary: convertToHTML(raw.Summary),
		PersonalDetails: models.PersonalDetails{
			Fullname:    raw.PersonalDetails.Fullname,
			PhoneNumber: raw.PersonalDetails.PhoneNumber,
			Address:     raw.PersonalDetails.Address,
			Email:       raw.PersonalDetails.Email,
		},
		Socials:       shapeSocials(raw.Socials),
		Education:     make([]models.Education, 0, len(raw.Education)),
		Languages:     make([]models.Language, 0, len(raw.Languages)),
		Skills:        make([]models.SkillCategory, 0, len(raw.Skills)),
		Works:         make([]models.Work, 0, len(raw.Works)),
		Projects:      make([]models.Project, 0, len(raw.Projects)),
		Certification: make([]models.Certification, 0, len(raw.Certification)),
		Organization:  make([]models.Organization, 0, len(raw.Organization)),
		Award:         make([]models.Award, 0, len(raw.Award)),
	}

	for _, edu := range raw.Education {
		endDate, _ := processDateAndOngoing(edu.EndDate)
		cv.Education = append(cv.Education, models.Education{
			Degree:      edu.Degree,
			School:      edu.School,
			StartDate:   parseFlexibleDate(edu.StartDate),
			EndDate:     endDate,
			SchoolLink:  edu.SchoolLink,
			City:        edu.City,
			GPA:         edu.GPA.Value,
			Description: convertToHTML(edu.Description),
		})
	}

	for _, lang := range raw.Languages {
		if lang.Language == "" {
			continue
		}
		proficiency := lang.Proficiency
		if proficiency == "" {
			proficiency = "Not specified"
		}
		cv.Languages = append(cv.Languages, models.Language{
			Language:    lang.Language,
			Proficiency: proficiency,
		})
	}

	for _, skill := range raw.Skills {
		cv.Skills = append(cv.Skills, models.SkillCategory{
			SkillCategory: skill.SkillCategory,
			ListOfSkill:   skill.ListOfSkill,
		})
	}

	for _, work := range raw.Works {
		endDate, current := processDateAndOngoing(work.EndDate)
		cv.Works = append(cv.Works, models.Work{
			CompanyName:      work.CompanyName,
			IsCurrentWorking: current,
			Position:         work.Position,
			Location:         work.Location,
			StartDate:        parseFlexibleDate(work.StartDate),
			EndDate:          endDate,
			Description:      convertToHTML(work.Description),
		})
	}

	for _, project := range raw.Projects {
		endDate, ongoing := processDateAndOngoing(project.EndDate)
		cv.Projects = append(cv.Projects, models.Project{
			Name:        project.Name,
			Link:        project.Link,
			StartDate:   parseFlexibleDate(project.StartDate),
			EndDate:     endDate,
			IsOngoing:   ongoing,
			Description: convertToHTML(project.Description),
		})
	}

	for _, cert := range raw.Certification {
		cv.Certification = append(cv.Certification, models.Certification{
			CertificationName:   cert.CertificationName,
			IssuingOrganization: cert.IssuingOrganization,
			IssuedDate:          parseFlexibleDate(cert.IssuedDate),
			CertificationLink:   cert.CertificationLink,
			CredentialID:        cert.CredentialID,
		})
	}

	for _, org := range raw.Organization {
		endDate, _ := processDateAndOngoing(org.EndDate)
		cv.Organization = append(cv.Organization, models.Organization{
			Name:        org.Name,
			Position:    org.Position,
			Address:     org.Address,
			StartDate:   parseFlexibleDate(org.StartDate),
			EndDate:     endDate,
			Description: convertToHTML(org.Description),
		})
	}

	for _, award := range raw.Award {
		cv.Award = append(cv.Award, models.Award{
			AwardTitle:     award.AwardTitle,
			AwardTitleLink: award.AwardTitleLink,
			Issuer:         award.Issuer,
			IssuedDate:     parseFlexibleDate(award.IssuedDate),
			Description:    convertToHTML(award.Description),
		})
	}

	return cv
}
