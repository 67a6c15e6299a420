// Command seed loads demo data for local development: a sample trader with a
// few parsed transactions, a chama and a savings goal.
package main

import (
	"log"

	"tajiri/internal/config"
	"tajiri/internal/models"
	"tajiri/internal/repositories"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize databases:", err)
	}
	defer func() {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("Failed to close database connection: %v", err)
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("Failed to close redis connection: %v", err)
			}
		}
	}()

	phone := config.GetEnv("SEED_PHONE", "254712345678")

	var existing models.User
	if err := repositories.DB.Where("phone = ?", phone).First(&existing).Error; err == nil {
		log.Println("Demo user already exists, nothing to do")
		return
	}

	user := models.User{
		Phone:         phone,
		Name:          "Wanjiku Kamau",
		Email:         "wanjiku@example.com",
		TrustScore:    models.TrustScoreFloor,
		PhoneVerified: true,
	}
	if err := repositories.DB.Create(&user).Error; err != nil {
		log.Fatal("Failed to create demo user:", err)
	}

	transactions := []models.Transaction{
		{UserID: user.ID, Amount: 1200, Type: models.TransactionTypeCredit,
			Party: "0722000000", Description: "Payment received from 0722000000",
			Source: models.SourceSMSParsed},
		{UserID: user.ID, Amount: 800, Type: models.TransactionTypeCredit,
			Description: "Sale - airtime", Source: models.SourceSMSParsed},
		{UserID: user.ID, Amount: 300, Type: models.TransactionTypeDebit,
			Description: "Airtime purchase", Source: models.SourceSMSParsed},
	}
	for i := range transactions {
		if err := repositories.DB.Create(&transactions[i]).Error; err != nil {
			log.Fatal("Failed to create demo transaction:", err)
		}
	}

	chama := models.ChamaGroup{
		Name:          "Mama Mboga Savings Circle",
		Description:   "Weekly market traders savings group",
		MonthlyTarget: 5000,
	}
	if err := repositories.DB.Create(&chama).Error; err != nil {
		log.Fatal("Failed to create demo chama:", err)
	}
	member := models.ChamaMember{
		ChamaID: chama.ID,
		UserID:  user.ID,
		Role:    models.ChamaRoleLeader,
	}
	if err := repositories.DB.Create(&member).Error; err != nil {
		log.Fatal("Failed to create demo chama membership:", err)
	}

	goal := models.SavingsGoal{
		UserID:       user.ID,
		Name:         "New market stall",
		TargetAmount: 30000,
		SavedAmount:  7500,
	}
	if err := repositories.DB.Create(&goal).Error; err != nil {
		log.Fatal("Failed to create demo savings goal:", err)
	}

	log.Printf("Demo data created for %s (user id %d)", phone, user.ID)
}
