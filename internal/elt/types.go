package elt

// Calculation methods exposed by the ELT service.
const (
	MethodPreliminary = "PreliminaryKASKOCalculation"
	MethodFinal       = "FinalKASKOCalculation"
)

// AuthInfo is the transport-level credential block carried in request bodies.
type AuthInfo struct {
	Login    string `xml:"Login"`
	Password string `xml:"Password"`
}

// Modification describes the vehicle modification being insured.
type Modification struct {
	Power      int    `json:"Power" xml:"Power"`
	EngineType int    `json:"EngineType" xml:"EngineType"`
	KPPTypeID  int    `json:"KPPTypeId" xml:"KPPTypeId"`
	BodyType   int    `json:"BodyType" xml:"BodyType"`
	Seats      string `json:"Seats" xml:"Seats"`
	Country    int    `json:"Country" xml:"Country"`
}

// SpecialMachinery is filled for non-passenger equipment quotes.
type SpecialMachinery struct {
	SpecialMachineryMark  string `json:"SpecialMachineryMark" xml:"SpecialMachineryMark"`
	SpecialMachineryModel string `json:"SpecialMachineryModel" xml:"SpecialMachineryModel"`
	Type                  string `json:"Type" xml:"Type"`
	Industry              string `json:"Industry" xml:"Industry"`
	Mover                 string `json:"Mover" xml:"Mover"`
}

// Vehicle carries usage characteristics of the insured vehicle.
type Vehicle struct {
	VIN             string `json:"VIN" xml:"VIN"`
	Category        string `json:"Category" xml:"Category"`
	MaxAllowedMass  int    `json:"MaxAllowedMass" xml:"MaxAllowedMass"`
	VehicleUsage    int    `json:"VehicleUsage" xml:"VehicleUsage"`
	Mileage         int    `json:"Mileage" xml:"Mileage"`
	SeatingCapacity int    `json:"SeatingCapacity" xml:"SeatingCapacity"`
}

// Driver is one driver's age/experience pair.
type Driver struct {
	Age        int `json:"Age" xml:"Age"`
	Experience int `json:"Experience" xml:"Experience"`
}

// DriverList wraps the repeated Driver element.
type DriverList struct {
	Driver []Driver `json:"Driver" xml:"Driver"`
}

// GOItem is one liability-extension option.
type GOItem struct {
	ID  string `json:"Id" xml:"Id"`
	Sum string `json:"Sum" xml:"Sum"`
}

// Insurer identifies the policy holder.
type Insurer struct {
	SubjectType int   `json:"SubjectType" xml:"SubjectType"`
	INN         int64 `json:"INN" xml:"INN"`
}

// Lessee identifies the leasing counterparty.
type Lessee struct {
	SubjectType int   `json:"SubjectType" xml:"SubjectType"`
	INN         int64 `json:"INN" xml:"INN"`
}

// CalcParams is the calculation payload shared by every company in a run.
type CalcParams struct {
	IsNew                      string           `json:"IsNew" xml:"IsNew"`
	UsageStart                 string           `json:"UsageStart" xml:"UsageStart"`
	UsageCityKLADR             string           `json:"UsageCityKLADR" xml:"UsageCityKLADR"`
	VehicleYear                string           `json:"VehicleYear" xml:"VehicleYear"`
	Mark                       string           `json:"Mark" xml:"Mark"`
	Model                      string           `json:"Model" xml:"Model"`
	Modification               Modification     `json:"Modification" xml:"Modification"`
	SpecialMachinery           SpecialMachinery `json:"SpecialMachinery" xml:"SpecialMachinery"`
	Duration                   int              `json:"Duration" xml:"Duration"`
	BankID                     int              `json:"BankId" xml:"BankId"`
	Cost                       int              `json:"Cost" xml:"Cost"`
	Franchise                  string           `json:"Franchise" xml:"Franchise"`
	SSType                     int              `json:"SSType" xml:"SSType"`
	STOA                       int              `json:"STOA" xml:"STOA"`
	Region                     string           `json:"Region" xml:"Region"`
	NotConfirmedDamages        int              `json:"NotConfirmedDamages" xml:"NotConfirmedDamages"`
	NotConfirmedGlassesDamages int              `json:"NotConfirmedGlassesDamages" xml:"NotConfirmedGlassesDamages"`
	PUUs                       []string         `json:"PUUs" xml:"PUUs>string"`
	DriversCount               int              `json:"DriversCount" xml:"DriversCount"`
	ApprovedDriving            int              `json:"ApprovedDriving" xml:"ApprovedDriving"`
	Risk                       int              `json:"Risk" xml:"Risk"`
	PayType                    int              `json:"PayType" xml:"PayType"`
	Vehicle                    Vehicle          `json:"Vehicle" xml:"Vehicle"`
	Drivers                    []DriverList     `json:"Drivers" xml:"Drivers"`
	GO                         []GOItem         `json:"GO" xml:"GO"`
	NS                         []string         `json:"NS" xml:"NS>string"`
	GAP                        int              `json:"GAP" xml:"GAP"`
	Insurer                    []Insurer        `json:"Insurer" xml:"Insurer"`
	Lessee                     []Lessee         `json:"Lessee" xml:"Lessee"`
}

// PaymentPeriod is one installment of the payment schedule.
type PaymentPeriod struct {
	Period int `json:"Period" xml:"Period"`
	Sum    int `json:"Sum" xml:"Sum"`
}

// PaymentPeriods wraps the repeated schedule element.
type PaymentPeriods struct {
	PaymentPeriod []PaymentPeriod `json:"PaymentPeriod" xml:"PaymentPeriod"`
}

// CalcResult is one company's calculation result. Every field is optional on
// the wire; absent elements decode to zero values rather than failing.
type CalcResult struct {
	RequestID      string          `json:"RequestId" xml:"RequestId"`
	CalcID         int64           `json:"CalcId" xml:"CalcId"`
	SKCalcID       string          `json:"SKCalcId" xml:"SKCalcId"`
	Message        string          `json:"Message" xml:"Message"`
	Error          string          `json:"Error" xml:"Error"`
	PremiumSum     int             `json:"PremiumSum" xml:"PremiumSum"`
	KASKOSum       int             `json:"KASKOSum" xml:"KASKOSum"`
	DOSum          int             `json:"DOSum" xml:"DOSum"`
	GOSum          int             `json:"GOSum" xml:"GOSum"`
	NSSum          int             `json:"NSSum" xml:"NSSum"`
	GAPSum         int             `json:"GAPSum" xml:"GAPSum"`
	TotalFranchise *int            `json:"TotalFranchise" xml:"TotalFranchise"`
	PaymentPeriods *PaymentPeriods `json:"PaymentPeriods" xml:"PaymentPeriods"`
}

// Outcome is the result of one company's calculation call: either a decoded
// result or a failure reason, never both.
type Outcome struct {
	Result *CalcResult
	Err    string
}

// Failed reports whether the call produced no usable result.
func (o Outcome) Failed() bool {
	return o.Err != ""
}

// Option is the generic id/name pair most reference lookups return.
type Option struct {
	ID   string `json:"Id" xml:"Id"`
	Name string `json:"Name" xml:"Name"`
}

// OptionValues wraps nested option values.
type OptionValues struct {
	OptionValue []Option `json:"OptionValue" xml:"OptionValue"`
}

// Car is one vehicle modification entry from GetAutoModifications.
type Car struct {
	ID           string `json:"Id" xml:"Id"`
	Name         string `json:"Name" xml:"Name"`
	Country      string `json:"Country" xml:"Country"`
	Power        int    `json:"Power" xml:"Power"`
	EngineType   string `json:"EngineType" xml:"EngineType"`
	EngineVolume int    `json:"EngineVolume" xml:"EngineVolume"`
	KPPTypeID    int    `json:"KPPTypeId" xml:"KPPTypeId"`
	BodyType     int    `json:"BodyType" xml:"BodyType"`
	DoorsCount   int    `json:"DoorsCount" xml:"DoorsCount"`
	Seats        int    `json:"Seats" xml:"Seats"`
}

// Bank is one financing bank entry.
type Bank struct {
	ID   string `json:"Id" xml:"Id"`
	Name string `json:"Name" xml:"Name"`
}

// DOType is one additional-equipment type.
type DOType struct {
	ID    string  `json:"Id" xml:"Id"`
	Name  string  `json:"Name" xml:"Name"`
	Price float64 `json:"Price" xml:"Price"`
}

// Company is one insurance company aggregated by ELT.
type Company struct {
	ID        string `json:"Id" xml:"Id"`
	Name      string `json:"Name" xml:"Name"`
	LegalName string `json:"LegalName" xml:"LegalName"`
	INN       string `json:"INN" xml:"INN"`
	KPP       string `json:"KPP" xml:"KPP"`
	Logo      string `json:"Logo" xml:"Logo"`
}

// CompanyOption is a company-specific calculation option.
type CompanyOption struct {
	ID        string        `json:"Id" xml:"Id"`
	Name      string        `json:"Name" xml:"Name"`
	InputType string        `json:"InputType" xml:"InputType"`
	Values    *OptionValues `json:"Values" xml:"Values"`
}

// GOLimit is one liability-extension insured sum.
type GOLimit struct {
	ID  int    `json:"Id" xml:"Id"`
	Sum string `json:"Sum" xml:"Sum"`
}

// RefInfo is one reference option with its allowed values.
type RefInfo struct {
	ID     string        `json:"Id" xml:"Id"`
	Name   string        `json:"Name" xml:"Name"`
	Values *OptionValues `json:"Values" xml:"Values"`
}

// KladrRegion is a region with its KLADR code.
type KladrRegion struct {
	ID    string `json:"Id" xml:"Id"`
	Name  string `json:"Name" xml:"Name"`
	Kladr string `json:"Kladr" xml:"Kladr"`
}

// PuuTypes wraps the anti-theft unit type list.
type PuuTypes struct {
	Type []string `json:"Type" xml:"Type"`
}

// PuuModel is one anti-theft unit model.
type PuuModel struct {
	ID    string   `json:"Id" xml:"Id"`
	Name  string   `json:"Name" xml:"Name"`
	Types PuuTypes `json:"Types" xml:"Types"`
}

// PrintForm is one printable form available for an order.
type PrintForm struct {
	ID   string `json:"Id" xml:"Id"`
	Name string `json:"Name" xml:"Name"`
}
