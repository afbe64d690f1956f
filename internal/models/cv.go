package models

import "time"

// ParsedCV is the structured representation of a résumé returned by
// POST /api/v1/cv/parse. It lives for the duration of a single request.
type ParsedCV struct {
	Summary         string          `json:"summary"`
	PersonalDetails PersonalDetails `json:"personalDetails"`
	Socials         []Social        `json:"socials"`
	Education       []Education     `json:"education"`
	Languages       []Language      `json:"languages"`
	Skills          []SkillCategory `json:"skills"`
	Works           []Work          `json:"works"`
	Projects        []Project       `json:"projects"`
	Certification   []Certification `json:"certification"`
	Organization    []Organization  `json:"organization"`
	Award           []Award         `json:"award"`
	ProcessingTimes ProcessingTimes `json:"processing_times"`
}

type PersonalDetails struct {
	Fullname    string `json:"fullname"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Email       string `json:"email"`
}

type Social struct {
	Icon string `json:"icon"`
	Link string `json:"link"`
}

type Education struct {
	Degree      string     `json:"degree"`
	School      string     `json:"school"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	SchoolLink  string     `json:"schoolLink,omitempty"`
	City        string     `json:"city"`
	GPA         *float64   `json:"GPA,omitempty"`
	Description string     `json:"description,omitempty"`
}

type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

type SkillCategory struct {
	SkillCategory string `json:"skillCategory"`
	ListOfSkill   string `json:"listOfSkill"`
}

type Work struct {
	CompanyName      string     `json:"companyName"`
	IsCurrentWorking bool       `json:"isCurrentWorking"`
	Position         string     `json:"position"`
	Location         string     `json:"location"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	Description      string     `json:"description"`
}

type Project struct {
	Name        string     `json:"name"`
	Link        string     `json:"link,omitempty"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsOngoing   bool       `json:"isOngoing"`
	Description string     `json:"description"`
}

type Certification struct {
	CertificationName   string     `json:"certificationName"`
	IssuingOrganization string     `json:"issuingOrganization"`
	IssuedDate          *time.Time `json:"issuedDate"`
	CertificationLink   string     `json:"certificationLink,omitempty"`
	CredentialID        string     `json:"credentialId,omitempty"`
}

type Organization struct {
	Name        string     `json:"name"`
	Position    string     `json:"position"`
	Address     string     `json:"address"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Description string     `json:"description"`
}

type Award struct {
	AwardTitle     string     `json:"awardTitle"`
	AwardTitleLink string     `json:"awardTitleLink,omitempty"`
	Issuer         string     `json:"issuer"`
	IssuedDate     *time.Time `json:"issuedDate"`
	Description    string     `json:"description"`
}

// ProcessingTimes reports per-stage latency in seconds.
type ProcessingTimes struct {
	TextExtraction float64 `json:"text_extraction"`
	Parsing        float64 `json:"parsing"`
	Total          float64 `json:"total"`
}
