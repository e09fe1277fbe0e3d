package main

import (
	"InfoCity/internal/models"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	app, err := InitializeApp("infocity.yaml")
	if err != nil {
		log.Fatal(err)
	}
	logger := app.LogService.Log

	town := &models.Town{BaseModel: models.BaseModel{ID: 125}, Name: "Toulon", Country: "France", State: "PACA"}
	user2 := models.NewUser(456, "paul", "martin", "paulmartin@mail.fr", "pass")
	user3 := models.NewUserBuilder().SetID(65).SetFirstName("test").SetLastName("retest").Build()
	advert := models.NewAdvertBuilder().SetID(1).SetMessage("Oye! Oye!").SetLocation("rue bidon").
		SetType("sport").Build()
	advert.SetTown(town)
	town.AddUser(user2)

	for _, entity := range []fmt.Stringer{town, user2, user3, advert} {
		logger.Info(entity.String())
	}

	existing, err := app.CityService.GetTown(town.ID)
	if err != nil {
		logger.Fatalf("Failed to read town: %v", err)
	}
	if existing == nil {
		err = app.CityService.RegisterTown(town, []*models.User{user2}, []*models.Advert{advert})
		if err != nil {
			logger.Fatalf("Failed to register town: %v", err)
		}
	} else {
		logger.WithField("town", existing.ID).Info("town already registered")
	}

	stored, err := app.CityService.GetTown(town.ID)
	if err != nil {
		logger.Fatalf("Failed to read town: %v", err)
	}
	logger.Infof("stored %s", stored)
	adverts, err := app.CityService.AdvertsInTown(town.ID, 0)
	if err != nil {
		logger.Fatalf("Failed to list adverts: %v", err)
	}
	for _, a := range adverts {
		logger.Infof("stored %s", a)
	}

	if !app.Configuration.Janitor.Enabled {
		return
	}
	if err := app.JanitorService.StartCleanCycle(); err != nil {
		logger.Fatalf("Failed to start janitor: %v", err)
	}
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	app.JanitorService.StopClean()
}
