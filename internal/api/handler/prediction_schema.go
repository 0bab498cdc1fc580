package handler

import "github.com/alumnihub/job-referral-api/internal/core/domain"

// predictRequest carries the 17 skill scores in the order the pre-trained
// model expects. Scores are self-assessed competencies between 0 and 100.
type predictRequest struct {
	DatabaseFundamentals   float64 `json:"database_fundamentals"           validate:"min=0,max=100"`
	ComputerArchitecture   float64 `json:"computer_architecture"           validate:"min=0,max=100"`
	DistributedComputing   float64 `json:"distributed_computing_systems"   validate:"min=0,max=100"`
	CyberSecurity          float64 `json:"cyber_security"                  validate:"min=0,max=100"`
	Networking             float64 `json:"networking"                      validate:"min=0,max=100"`
	Development            float64 `json:"development"                     validate:"min=0,max=100"`
	ProgrammingSkills      float64 `json:"programming_skills"              validate:"min=0,max=100"`
	ProjectManagement      float64 `json:"project_management"              validate:"min=0,max=100"`
	ComputerForensics      float64 `json:"computer_forensics_fundamentals" validate:"min=0,max=100"`
	TechnicalCommunication float64 `json:"technical_communication"         validate:"min=0,max=100"`
	AIML                   float64 `json:"ai_ml"                           validate:"min=0,max=100"`
	SoftwareEngineering    float64 `json:"software_engineering"            validate:"min=0,max=100"`
	BusinessAnalysis       float64 `json:"business_analysis"               validate:"min=0,max=100"`
	CommunicationSkills    float64 `json:"communication_skills"            validate:"min=0,max=100"`
	DataScience            float64 `json:"data_science"                    validate:"min=0,max=100"`
	TroubleshootingSkills  float64 `json:"troubleshooting_skills"          validate:"min=0,max=100"`
	GraphicsDesigning      float64 `json:"graphics_designing"              validate:"min=0,max=100"`
}

func (r predictRequest) toProfile() domain.SkillProfile {
	return domain.SkillProfile{
		DatabaseFundamentals:   r.DatabaseFundamentals,
		ComputerArchitecture:   r.ComputerArchitecture,
		DistributedComputing:   r.DistributedComputing,
		CyberSecurity:          r.CyberSecurity,
		Networking:             r.Networking,
		Development:            r.Development,
		ProgrammingSkills:      r.ProgrammingSkills,
		ProjectManagement:      r.ProjectManagement,
		ComputerForensics:      r.ComputerForensics,
		TechnicalCommunication: r.TechnicalCommunication,
		AIML:                   r.AIML,
		SoftwareEngineering:    r.SoftwareEngineering,
		BusinessAnalysis:       r.BusinessAnalysis,
		CommunicationSkills:    r.CommunicationSkills,
		DataScience:            r.DataScience,
		TroubleshootingSkills:  r.TroubleshootingSkills,
		GraphicsDesigning:      r.GraphicsDesigning,
	}
}

type predictResponse struct {
	Prediction string `json:"prediction"`
}

type predictionItemResponse struct {
	Input      domain.SkillProfile `json:"input_data"`
	Prediction string              `json:"prediction"`
}
