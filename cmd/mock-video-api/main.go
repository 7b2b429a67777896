package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ytget/video-playlists/internal/mockapi"
)

const defaultPort = "3008"

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	port := getenv("PORT", defaultPort)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mockapi.NewRouter(mockapi.Videos()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("%s on :%s", mockapi.ServiceName, port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("listen: %v", err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
