package models

// Temperature holds the forecast temperatures in °C.
type Temperature struct {
	Min     float64 `bson:"min" json:"min"`
	Max     float64 `bson:"max" json:"max"`
	Current float64 `bson:"current" json:"current"`
}

// Forecast is one day of environmental data for a location.
type Forecast struct {
	Date                string      `bson:"date" json:"date"` // "YYYY-MM-DD"
	Location            string      `bson:"location" json:"location"`
	Temperature         Temperature `bson:"temperature" json:"temperature"`
	Conditions          string      `bson:"conditions" json:"conditions"`
	PrecipitationChance float64     `bson:"precipitation_chance" json:"precipitation_chance"` // percent
	WindSpeed           float64     `bson:"wind_speed" json:"wind_speed"`                     // km/h
	Suitable            bool        `bson:"maintenance_suitable" json:"maintenance_suitable"`
	Notes               string      `bson:"notes,omitempty" json:"notes,omitempty"`
}

// WeatherRecommendation is the suitability verdict for a target service date.
type WeatherRecommendation struct {
	Date             string   `json:"date"`
	Suitable         bool     `json:"suitable"`
	Reason           string   `json:"reason"`
	AlternativeDates []string `json:"alternative_dates,omitempty"` // chronological, each individually suitable
}

// WeatherAlert flags a hazardous forecast entry.
type WeatherAlert struct {
	Type    string `json:"type"` // "warning", "alert" or "info"
	Message string `json:"message"`
	Date    string `json:"date"`
}

// WeatherSummary aggregates the forecast window for planning.
type WeatherSummary struct {
	SuitableDays       int      `json:"suitable_days"`
	UnsuitableDays     int      `json:"unsuitable_days"`
	AverageTemperature int      `json:"average_temperature"`
	RainDays           int      `json:"rain_days"`
	Recommendations    []string `json:"recommendations"`
}
