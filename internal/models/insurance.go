package models

import (
	"time"

	"gorm.io/datatypes"
)

// Insurance is one completed multi-company calculation run.
// At most one row exists per calc_reso_id: a re-submission with the same
// correlation id replaces the prior run and its line items wholesale.
type Insurance struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CalcID     *int64    `gorm:"column:calc_id;uniqueIndex" json:"calc_id"`
	CalcResoID *int64    `gorm:"column:calc_reso_id;uniqueIndex" json:"calc_reso_id"`
	QuoteID    *int64    `gorm:"column:quote_id;uniqueIndex" json:"quote_id"`
	PoliceID   *int64    `gorm:"column:police_id;uniqueIndex" json:"police_id"`
	CreatedAt  time.Time `json:"created_at"`

	Quotes []InsuranceElt `gorm:"foreignKey:InsuranceID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Insurance) TableName() string {
	return "insurance"
}

// InsuranceElt is one company's quote within a run. Companies whose call
// failed are stored too, with Error populated and the sums left at zero.
type InsuranceElt struct {
	ID             int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	InsuranceID    int64          `gorm:"column:insurance_id;not null;index" json:"insurance_id"`
	CalcID         int64          `gorm:"column:calc_id;index" json:"calc_id"`
	InsuranceName  string         `gorm:"column:insurance_name;type:text;not null" json:"insurance_name"`
	RequestID      string         `gorm:"column:request_id" json:"RequestId"`
	SKCalcID       string         `gorm:"column:sk_calc_id" json:"SKCalcId"`
	Message        *string        `gorm:"column:message;type:text" json:"Message"`
	Error          *string        `gorm:"column:error;type:text" json:"Error"`
	PremiumSum     int            `gorm:"column:premium_sum" json:"PremiumSum"`
	KASKOSum       int            `gorm:"column:kasko_sum" json:"KASKOSum"`
	DOSum          int            `gorm:"column:do_sum" json:"DOSum"`
	GOSum          int            `gorm:"column:go_sum" json:"GOSum"`
	NSSum          int            `gorm:"column:ns_sum" json:"NSSum"`
	GAPSum         int            `gorm:"column:gap_sum" json:"GAPSum"`
	TotalFranchise *int           `gorm:"column:total_franchise" json:"TotalFranchise"`
	PaymentPeriods datatypes.JSON `gorm:"column:payments_period" json:"PaymentPeriods"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (InsuranceElt) TableName() string {
	return "insurance_elt"
}
