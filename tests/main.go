package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"boilertech/database"
	"boilertech/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Seed tool: wipes and repopulates the scheduling collections with a small
// London roster, customers, a fortnight of forecasts and maintenance records.
func main() {
	database.InitDB()
	db := database.MongoClient.Database(database.DatabaseName)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	for _, name := range []string{"technicians", "customers", "forecasts", "bookings", "maintenance_records"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", name, err)
		}
	}

	weekdays := func(start, end string) map[string]models.DayWindow {
		return map[string]models.DayWindow{
			"monday":    {Start: start, End: end},
			"tuesday":   {Start: start, End: end},
			"wednesday": {Start: start, End: end},
			"thursday":  {Start: start, End: end},
			"friday":    {Start: start, End: end},
		}
	}

	technicians := []interface{}{
		models.Technician{
			ID: "tech-001", Name: "James Mitchell", Email: "james.mitchell@boilertech.com",
			Phone: "+44 7700 900101", Skills: []string{"Worcester Bosch", "Vaillant", "gas safety"},
			Availability: weekdays("08:00", "16:00"), Location: "London",
			ExperienceYears: 12, Rating: 4.8,
			Specializations: []string{"emergency repairs", "boiler installation"},
		},
		models.Technician{
			ID: "tech-002", Name: "Sarah Okafor", Email: "sarah.okafor@boilertech.com",
			Phone: "+44 7700 900102", Skills: []string{"Worcester Bosch", "Baxi"},
			Availability: weekdays("09:00", "17:00"), Location: "London",
			ExperienceYears: 6, Rating: 4.2,
			Specializations: []string{"annual servicing"},
		},
		models.Technician{
			ID: "tech-003", Name: "David Hughes", Email: "david.hughes@boilertech.com",
			Phone: "+44 7700 900103", Skills: []string{"Vaillant", "Ideal", "power flush"},
			Availability: map[string]models.DayWindow{
				"monday":   {Start: "08:00", End: "14:00"},
				"tuesday":  {Start: "08:00", End: "14:00"},
				"saturday": {EmergencyOnly: true},
				"sunday":   {EmergencyOnly: true},
			},
			Location:        "Manchester",
			ExperienceYears: 15, Rating: 4.9,
			Specializations: []string{"emergency repairs"},
		},
	}
	if _, err := db.Collection("technicians").InsertMany(ctx, technicians); err != nil {
		log.Fatalf("Failed to seed technicians: %v", err)
	}

	customers := []interface{}{
		models.Customer{
			ID: "cust-001", Name: "Margaret Price", Email: "m.price@example.com",
			Phone: "+44 7700 900201", Address: "14 Elm Grove, London, SW4 7BT",
			BoilerModel: "Worcester Bosch Greenstar 30i", InstallDate: "2018-06-15",
		},
		models.Customer{
			ID: "cust-002", Name: "Tom Whitfield", Email: "t.whitfield@example.com",
			Phone: "+44 7700 900202", Address: "3 Castle Road, Manchester, M4 1LZ",
			BoilerModel: "Vaillant ecoTEC plus 832", InstallDate: "2012-03-02",
		},
	}
	if _, err := db.Collection("customers").InsertMany(ctx, customers); err != nil {
		log.Fatalf("Failed to seed customers: %v", err)
	}

	// A fortnight of forecasts per city. Every fourth day is a washout so the
	// fallback cascade has something to route around.
	var forecasts []interface{}
	today := time.Now()
	for _, location := range []string{"london", "manchester"} {
		for i := 0; i < 14; i++ {
			date := today.AddDate(0, 0, i).Format("2006-01-02")
			suitable := i%4 != 3
			f := models.Forecast{
				Date:     date,
				Location: location,
				Temperature: models.Temperature{
					Min: 6, Max: 14, Current: 11,
				},
				Conditions:          "partly cloudy",
				PrecipitationChance: 20,
				WindSpeed:           12,
				Suitable:            suitable,
			}
			if !suitable {
				f.Conditions = "heavy rain"
				f.PrecipitationChance = 90
				f.WindSpeed = 28
			}
			forecasts = append(forecasts, f)
		}
	}
	if _, err := db.Collection("forecasts").InsertMany(ctx, forecasts); err != nil {
		log.Fatalf("Failed to seed forecasts: %v", err)
	}

	records := []interface{}{
		models.MaintenanceRecord{
			CustomerID:  "cust-001",
			LastService: today.AddDate(0, -10, 0).Format("2006-01-02"),
			NextService: today.AddDate(0, 2, 0).Format("2006-01-02"),
			Status:      "scheduled",
			RiskLevel:   models.RiskLow,
			ServiceHistory: []models.ServiceRecord{
				{Date: today.AddDate(0, -10, 0).Format("2006-01-02"), Type: models.ServiceAnnual, Technician: "tech-001"},
				{Date: today.AddDate(-1, -10, 0).Format("2006-01-02"), Type: models.ServiceAnnual, Technician: "tech-002"},
			},
		},
		models.MaintenanceRecord{
			CustomerID:  "cust-002",
			LastService: today.AddDate(-1, -2, 0).Format("2006-01-02"),
			NextService: today.AddDate(0, -2, 0).Format("2006-01-02"),
			Status:      "overdue",
			RiskLevel:   models.RiskMedium,
			ServiceHistory: []models.ServiceRecord{
				{Date: today.AddDate(-1, -2, 0).Format("2006-01-02"), Type: models.ServiceRepair, Technician: "tech-003"},
			},
		},
	}
	if _, err := db.Collection("maintenance_records").InsertMany(ctx, records); err != nil {
		log.Fatalf("Failed to seed maintenance records: %v", err)
	}

	fmt.Printf("Seeded %d technicians, %d customers, %d forecasts, %d maintenance records\n",
		len(technicians), len(customers), len(forecasts), len(records))
}
