package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"meetapp/pkg/config"
)

const bannerPrefix = "banners"

// bannerReadPolicy allows anonymous GET on banner objects only.
func bannerReadPolicy(bucket string) (string, error) {
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Sid":       "PublicReadBanners",
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    []string{"s3:GetObject"},
				"Resource":  []string{fmt.Sprintf("arn:aws:s3:::%s/%s/*", bucket, bannerPrefix)},
			},
		},
	}
	b, err := json.MarshalIndent(policy, "", "  ")
	return string(b), err
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	s3 := cfg.Storage.S3

	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("  Meetapp banner bucket setup")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("\nEndpoint: %s\n", s3.Endpoint)
	fmt.Printf("Bucket: %s\n", s3.Bucket)
	fmt.Printf("Region: %s\n", s3.Region)

	client, err := minio.New(s3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(s3.AccessKey, s3.SecretKey, ""),
		Secure: s3.UseSSL,
		Region: s3.Region,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, s3.Bucket)
	if err != nil {
		log.Fatalf("Failed to check bucket: %v", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, s3.Bucket, minio.MakeBucketOptions{Region: s3.Region}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		fmt.Printf("\n✓ Bucket '%s' created\n", s3.Bucket)
	} else {
		fmt.Printf("\n✓ Bucket '%s' exists\n", s3.Bucket)
	}

	// banner URL ที่ส่งให้ mobile ต้องเปิดได้โดยไม่ต้อง sign
	policy, err := bannerReadPolicy(s3.Bucket)
	if err != nil {
		log.Fatalf("Failed to build policy: %v", err)
	}
	fmt.Println("\n--- Setting Bucket Policy ---")
	fmt.Println(policy)

	if err := client.SetBucketPolicy(ctx, s3.Bucket, policy); err != nil {
		log.Printf("⚠️  Warning: Failed to set policy: %v", err)
	} else {
		fmt.Println("\n✓ Bucket policy set successfully")
	}

	fmt.Println("\n--- Testing Basic Operations ---")

	key := bannerPrefix + "/setup-check.txt"
	content := []byte("meetapp upload permission check")

	fmt.Print("Testing PutObject... ")
	if _, err := client.PutObject(ctx, s3.Bucket, key, bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: "text/plain"}); err != nil {
		log.Fatalf("❌ Failed: %v", err)
	}
	fmt.Println("✓ OK")

	fmt.Print("Testing RemoveObject... ")
	if err := client.RemoveObject(ctx, s3.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		log.Fatalf("❌ Failed: %v", err)
	}
	fmt.Println("✓ OK")

	fmt.Println("\n✓ Bucket is ready for banner uploads")
}
