package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Imports a sneaker catalog workbook into a store over the HTTP API.
// Each row becomes one product POST; a failing row is reported and
// skipped so one bad sneaker never aborts the whole run.
//
// Expected columns:
//
//	0 name | 1 pictureUrl | 2 price (cents) | 3 discount | 4 sku
//	5 slug | 6 brand | 7 silhouette | 8 designer | 9 details
//	10 releaseDate (MM/DD/YYYY) | 11 upperMaterial | 12 singleGender
//	13 category | 14 story | 15 sizeUnit | 16 color | 17 isFeatured
//	18 sizes ("8=120;8.5=125;9=130") | 19 images (";"-separated URLs)

type sizePayload struct {
	Value    string `json:"value"`
	Price    string `json:"price"`
	InStock  bool   `json:"inStock"`
	Quantity string `json:"quantity"`
}

type imagePayload struct {
	URL string `json:"url"`
}

type productPayload struct {
	Name          string         `json:"name"`
	PictureURL    string         `json:"pictureUrl"`
	Price         float64        `json:"price"`
	Discount      string         `json:"discount"`
	SKU           string         `json:"sku"`
	Slug          string         `json:"slug"`
	Brand         string         `json:"brand"`
	Silhouette    string         `json:"silhouette"`
	Designer      string         `json:"designer"`
	Details       string         `json:"details"`
	ReleaseDate   string         `json:"releaseDate"`
	UpperMaterial string         `json:"upperMaterial"`
	SingleGender  string         `json:"singleGender"`
	Category      string         `json:"category"`
	Story         string         `json:"story"`
	SizeUnit      string         `json:"sizeUnit"`
	Color         string         `json:"color"`
	IsFeatured    bool           `json:"isFeatured"`
	Sizes         []sizePayload  `json:"sizes"`
	Images        []imagePayload `json:"images"`
}

type loginResponse struct {
	Tokens struct {
		AccessToken string `json:"access_token"`
	} `json:"tokens"`
}

func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: go run cmd/import/main.go <xlsx_file_path> <store_id>")
	}

	filePath := os.Args[1]
	storeID := os.Args[2]

	baseURL := getEnv("API_BASE_URL", "http://localhost:8080")
	email := os.Getenv("IMPORT_EMAIL")
	password := os.Getenv("IMPORT_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("IMPORT_EMAIL and IMPORT_PASSWORD must be set")
	}

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	products, skipped, err := readProductsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total products to import: %d (skipped %d invalid rows)\n", len(products), skipped)

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	client := &http.Client{Timeout: 30 * time.Second}

	token, err := login(client, baseURL, email, password)
	if err != nil {
		log.Fatal("Login failed:", err)
	}

	imported := 0
	failed := 0
	for i, product := range products {
		if err := postProduct(client, baseURL, storeID, token, product); err != nil {
			failed++
			fmt.Printf("Row %d (%s) failed: %v\n", i+2, product.Name, err)
			continue
		}
		imported++
		if imported%50 == 0 {
			fmt.Printf("Imported %d products...\n", imported)
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Imported: %d\n", imported)
	fmt.Printf("  Failed:   %d\n", failed)
	fmt.Printf("  Skipped:  %d\n", skipped)
}

func readProductsFromXLSX(filePath string) ([]productPayload, int, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, 0, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("no data found in XLSX file")
	}

	var products []productPayload
	skipped := 0

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 20 {
			skipped++
			continue
		}

		name := strings.TrimSpace(row[0])
		pictureURL := strings.TrimSpace(row[1])
		if name == "" || pictureURL == "" {
			skipped++
			continue
		}

		// Prices come in cents.
		cents, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			skipped++
			continue
		}

		product := productPayload{
			Name:          name,
			PictureURL:    pictureURL,
			Price:         cents / 100,
			Discount:      strings.TrimSpace(row[3]),
			SKU:           strings.TrimSpace(row[4]),
			Slug:          strings.TrimSpace(row[5]),
			Brand:         strings.TrimSpace(row[6]),
			Silhouette:    strings.TrimSpace(row[7]),
			Designer:      strings.TrimSpace(row[8]),
			Details:       strings.TrimSpace(row[9]),
			ReleaseDate:   strings.TrimSpace(row[10]),
			UpperMaterial: strings.TrimSpace(row[11]),
			SingleGender:  strings.TrimSpace(row[12]),
			Category:      strings.TrimSpace(row[13]),
			Story:         strings.TrimSpace(row[14]),
			SizeUnit:      strings.TrimSpace(row[15]),
			Color:         strings.TrimSpace(row[16]),
			IsFeatured:    strings.EqualFold(strings.TrimSpace(row[17]), "true"),
			Sizes:         parseSizes(row[18]),
			Images:        parseImages(row[19]),
		}

		products = append(products, product)
	}

	return products, skipped, nil
}

// parseSizes turns "8=120;8.5=125" into size rows. Imported sizes start
// out of stock so the shop owner releases them explicitly.
func parseSizes(raw string) []sizePayload {
	sizes := []sizePayload{}
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		value, price, _ := strings.Cut(pair, "=")
		sizes = append(sizes, sizePayload{
			Value:    strings.TrimSpace(value),
			Price:    strings.TrimSpace(price),
			InStock:  false,
			Quantity: "0",
		})
	}
	return sizes
}

func parseImages(raw string) []imagePayload {
	var images []imagePayload
	for _, url := range strings.Split(raw, ";") {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}
		images = append(images, imagePayload{URL: url})
	}
	return images
}

func login(client *http.Client, baseURL, email, password string) (string, error) {
	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})

	resp, err := client.Post(baseURL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var parsed loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if parsed.Tokens.AccessToken == "" {
		return "", fmt.Errorf("login response carried no access token")
	}
	return parsed.Tokens.AccessToken, nil
}

func postProduct(client *http.Client, baseURL, storeID, token string, product productPayload) error {
	body, err := json.Marshal(product)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/%s/products", baseURL, storeID)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
