package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/store"
)

func main() {
	config.Load()

	// A failed connect does not abort startup: the service keeps serving
	// with a degraded gateway and /test reports the outage.
	var db *mongo.Database
	client, err := database.Connect(config.AppEnv.DatabaseURL)
	if err != nil {
		log.Println("⚠️ mongo connect warning:", err)
	} else {
		db = client.Database(config.AppEnv.DatabaseName)
		log.Println("MongoDB connected to:", db.Name())

		if err := database.EnsureProductIndexes(db); err != nil {
			log.Println("⚠️ product index warning:", err)
		}
	}

	gateway := store.NewMongo(db)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	handlers.RegisterRoutes(r, gateway, config.AppEnv)

	r.Run(":" + config.AppEnv.Port)
}
