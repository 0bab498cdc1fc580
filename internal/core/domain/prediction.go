package domain

import "time"

// SkillProfile is the 17-dimension input vector of the career predictor.
// Each field is a self-assessed competency score between 0 and 100, in the
// order the pre-trained model expects.
type SkillProfile struct {
	DatabaseFundamentals   float64 `json:"database_fundamentals"`
	ComputerArchitecture   float64 `json:"computer_architecture"`
	DistributedComputing   float64 `json:"distributed_computing_systems"`
	CyberSecurity          float64 `json:"cyber_security"`
	Networking             float64 `json:"networking"`
	Development            float64 `json:"development"`
	ProgrammingSkills      float64 `json:"programming_skills"`
	ProjectManagement      float64 `json:"project_management"`
	ComputerForensics      float64 `json:"computer_forensics_fundamentals"`
	TechnicalCommunication float64 `json:"technical_communication"`
	AIML                   float64 `json:"ai_ml"`
	SoftwareEngineering    float64 `json:"software_engineering"`
	BusinessAnalysis       float64 `json:"business_analysis"`
	CommunicationSkills    float64 `json:"communication_skills"`
	DataScience            float64 `json:"data_science"`
	TroubleshootingSkills  float64 `json:"troubleshooting_skills"`
	GraphicsDesigning      float64 `json:"graphics_designing"`
}

// Vector returns the profile as a slice in model input order.
func (p SkillProfile) Vector() []float64 {
	return []float64{
		p.DatabaseFundamentals,
		p.ComputerArchitecture,
		p.DistributedComputing,
		p.CyberSecurity,
		p.Networking,
		p.Development,
		p.ProgrammingSkills,
		p.ProjectManagement,
		p.ComputerForensics,
		p.TechnicalCommunication,
		p.AIML,
		p.SoftwareEngineering,
		p.BusinessAnalysis,
		p.CommunicationSkills,
		p.DataScience,
		p.TroubleshootingSkills,
		p.GraphicsDesigning,
	}
}

// Prediction is a stored classifier result, scoped to the user who asked.
type Prediction struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Input     SkillProfile `json:"input_data"`
	Career    string       `json:"prediction"`
	CreatedAt time.Time    `json:"created_at"`
}
