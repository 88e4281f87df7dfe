package domain

const (
	BaselineSourceCategory = "category"
	BaselineSourceGlobal   = "global"
)

// Baseline is the mean footprint of a group of catalog products.
type Baseline struct {
	CarbonKgCO2e float64 `json:"baseline_carbon"`
	WaterLitres  float64 `json:"baseline_water"`
	AvgPrice     float64 `json:"avg_price"`
	Count        int     `json:"count"`
	Source       string  `json:"baseline_source"`
}

type SustainabilityResult struct {
	CarbonSaved float64  `json:"carbon_saved"`
	WaterSaved  float64  `json:"water_saved"`
	EcoScore    float64  `json:"eco_score"`
	WaterScore  float64  `json:"water_score"`
	Message     string   `json:"message"`
	Baseline    Baseline `json:"baseline"`
}
