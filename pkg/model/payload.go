package model

type PropertyPayload struct {
	ID             int64    `json:"id,omitempty" bson:"-"`
	Name           string   `json:"name" bson:"name" validate:"required,max=255"`
	Description    string   `json:"description" bson:"description" validate:"max=2000"`
	TotalArea      int      `json:"totalArea" bson:"total_area" validate:"min=0"`
	AvailableArea  *int     `json:"availableArea" bson:"available_area" validate:"omitempty,min=0,ltefield=TotalArea"`
	Type           string   `json:"type" bson:"type" validate:"max=100"`
	Address        string   `json:"address" bson:"address" validate:"max=500"`
	City           string   `json:"city" bson:"city" validate:"max=100"`
	State          string   `json:"state" bson:"state" validate:"omitempty,uf"`
	Latitude       *float64 `json:"latitude" bson:"latitude" validate:"omitempty,latitude"`
	Longitude      *float64 `json:"longitude" bson:"longitude" validate:"omitempty,longitude"`
	AdditionalData string   `json:"additionalData" bson:"additional_data"`
}

func (p *PropertyPayload) Kind() EntityKind { return KindProperty }
func (p *PropertyPayload) Extra() string    { return p.AdditionalData }

type ProjectPayload struct {
	ID                            int64         `json:"id,omitempty" bson:"-"`
	Name                          string        `json:"name" bson:"name" validate:"required,max=255"`
	Category                      string        `json:"category" bson:"category" validate:"max=100"`
	Description                   string        `json:"description" bson:"description" validate:"max=2000"`
	StartDate                     *string       `json:"startDate" bson:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EstimatedEndDate              *string       `json:"estimatedEndDate" bson:"estimated_end_date" validate:"omitempty,datetime=2006-01-02"`
	Priority                      Priority      `json:"priority" bson:"priority" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	Status                        ProjectStatus `json:"status" bson:"status" validate:"required,oneof=PLANNING APPROVED IN_PROGRESS ON_HOLD COMPLETED CANCELLED"`
	TotalEstimatedCosts           float64       `json:"totalEstimatedCosts" bson:"total_estimated_costs" validate:"min=0"`
	TotalInvestment               float64       `json:"totalInvestment" bson:"total_investment" validate:"min=0"`
	EstimatedReturnOverInvestment float64       `json:"estimatedReturnOverInvestment" bson:"estimated_roi"`
	AdditionalData                string        `json:"additionalData" bson:"additional_data"`
}

func (p *ProjectPayload) Kind() EntityKind { return KindProject }
func (p *ProjectPayload) Extra() string    { return p.AdditionalData }

type InvestorPayload struct {
	ID             int64   `json:"id,omitempty" bson:"-"`
	Name           string  `json:"name" bson:"name" validate:"required,max=255"`
	TaxID          string  `json:"taxId" bson:"tax_id" validate:"omitempty,taxid"`
	Email          string  `json:"email" bson:"email" validate:"omitempty,email"`
	Phone          string  `json:"phone" bson:"phone" validate:"max=30"`
	Address        string  `json:"address" bson:"address" validate:"max=500"`
	City           string  `json:"city" bson:"city" validate:"max=100"`
	State          string  `json:"state" bson:"state" validate:"omitempty,uf"`
	TotalFunds     float64 `json:"totalFunds" bson:"total_funds" validate:"min=0"`
	InvestedFunds  float64 `json:"investedFunds" bson:"invested_funds" validate:"min=0"`
	Description    string  `json:"description" bson:"description" validate:"max=2000"`
	Active         bool    `json:"active" bson:"active"`
	AdditionalData string  `json:"additionalData" bson:"additional_data"`
}

func (p *InvestorPayload) Kind() EntityKind { return KindInvestor }
func (p *InvestorPayload) Extra() string    { return p.AdditionalData }
