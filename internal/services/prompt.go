package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCVExtractionPrompt creates the prompt that asks the model to extract
// the résumé into the ParsedCV JSON schema without inventing anything.
func (pb *PromptBuilder) BuildCVExtractionPrompt(rawText string) string {
	return fmt.Sprintf(`You are an expert in resume analysis. Your task is to extract information from the raw CV text below and structure it according to the specified format. IMPORTANT: Only extract information that exists in the raw text. Do not add, modify, or infer any information.

Return a JSON object with this structure:
{
    "summary": "Extract the professional summary/objective if present, otherwise null",
    "personalDetails": {
        "fullname": "Extract full name if present, otherwise null",
        "phoneNumber": "Extract phone number if present, otherwise null",
        "address": "Extract address if present, otherwise null",
        "email": "Extract email if present, otherwise null"
    },
    "socials": [
        {"icon": "Extract platform name if present, otherwise null", "link": "Extract profile URL if present, otherwise null"}
    ],
    "education": [
        {
            "degree": "Extract degree name if present, otherwise null",
            "school": "Extract school name if present, otherwise null",
            "startDate": "Extract start date if present, otherwise null",
            "endDate": "Extract end date if present, otherwise null",
            "schoolLink": "Extract school URL if present, otherwise null",
            "city": "Extract city if present, otherwise null",
            "GPA": "Extract GPA if present, otherwise null",
            "description": "Extract description if present, otherwise null"
        }
    ],
    "languages": [
        {"language": "Extract language name if present, otherwise null", "proficiency": "Extract proficiency level if present, otherwise null"}
    ],
    "skills": [
        {"skillCategory": "Extract category if present, otherwise null", "listOfSkill": "Extract skills if present, otherwise null"}
    ],
    "works": [
        {
            "companyName": "Extract company name if present, otherwise null",
            "isCurrentWorking": "Extract current status if present, otherwise null",
            "position": "Extract position if present, otherwise null",
            "location": "Extract location if present, otherwise null",
            "startDate": "Extract start date if present, otherwise null",
            "endDate": "Extract end date if present, otherwise null",
            "description": "Extract description if present, otherwise null"
        }
    ],
    "projects": [
        {
            "name": "Extract project name if present, otherwise null",
            "link": "Extract project URL if present, otherwise null",
            "startDate": "Extract start date if present, otherwise null",
            "endDate": "Extract end date if present, otherwise null",
            "isOngoing": "Extract ongoing status if present, otherwise null",
            "description": "Extract description if present, otherwise null"
        }
    ],
    "certification": [
        {
            "certificationName": "Extract certification name if present, otherwise null",
            "issuingOrganization": "Extract organization name if present, otherwise null",
            "issuedDate": "Extract issue date if present, otherwise null",
            "certificationLink": "Extract certification URL if present, otherwise null",
            "credentialId": "Extract credential ID if present, otherwise null"
        }
    ],
    "organization": [
        {
            "name": "Extract organization name if present, otherwise null",
            "position": "Extract position if present, otherwise null",
            "address": "Extract address if present, otherwise null",
            "startDate": "Extract start date if present, otherwise null",
            "endDate": "Extract end date if present, otherwise null",
            "description": "Extract description if present, otherwise null"
        }
    ],
    "award": [
        {
            "awardTitle": "Extract award name if present, otherwise null",
            "awardTitleLink": "Extract award URL if present, otherwise null",
            "issuer": "Extract issuer if present, otherwise null",
            "issuedDate": "Extract issue date if present, otherwise null",
            "description": "Extract description if present, otherwise null"
        }
    ]
}

Rules:
1. ONLY extract information that exists in the raw text
2. DO NOT add, modify, or infer any information
3. If a field is not found in the raw text, use null
4. If a section is not found in the raw text, use empty array []
5. Keep the original text format and content exactly as it appears
6. Do not translate or modify any text

Raw CV text:
%s`, rawText)
}

// CleanJSON strips markdown code fences the model wraps around JSON replies.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
