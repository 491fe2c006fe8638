package uploader_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"clubcentral/pkg/uploader"
)

var Module = fx.Provide(provideUploader)

func provideUploader() uploader.Uploader {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Fatal("CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET are required")
	}

	up, err := uploader.NewCloudinaryUploader(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Fatalf("Failed to initialize cloudinary uploader: %v", err)
	}
	return up
}
