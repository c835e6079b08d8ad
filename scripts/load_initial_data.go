package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"furnishing-portal-backend/internal/config"
	"furnishing-portal-backend/internal/database"
	"furnishing-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type FloorCountData struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

type RoomTypeCountData struct {
	Name   string           `yaml:"name"`
	Floors []FloorCountData `yaml:"floors"`
}

type FurnitureItemData struct {
	Type  string `yaml:"type"`
	Count int    `yaml:"count"`
}

type RoomData struct {
	ProjectName string              `yaml:"project_name"`
	Name        string              `yaml:"name"`
	RoomType    string              `yaml:"room_type,omitempty"`
	PdfURL      string              `yaml:"pdf_url,omitempty"`
	Furniture   []FurnitureItemData `yaml:"furniture,omitempty"`
}

type ProjectData struct {
	Name         string              `yaml:"name"`
	FloorPlanURL string              `yaml:"floor_plan_url,omitempty"`
	FloorMapping []RoomTypeCountData `yaml:"floor_mapping,omitempty"`
}

type CatalogData struct {
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	Description string  `yaml:"description,omitempty"`
	Quantity    int     `yaml:"quantity"`
	Price       float64 `yaml:"price"`
	Location    string  `yaml:"location,omitempty"`
}

// File structures
type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

type RoomsFile struct {
	Rooms []RoomData `yaml:"rooms"`
}

type CatalogFile struct {
	Furniture []CatalogData `yaml:"furniture"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	projects, err := loadProjects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	rooms, err := loadRooms(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load rooms: %w", err)
	}

	catalog, err := loadCatalog(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load furniture catalog: %w", err)
	}

	projectIDs := make(map[string]uint)
	for _, p := range projects {
		record := models.Project{
			Name:         p.Name,
			FloorPlanURL: p.FloorPlanURL,
			FloorMapping: toFloorMapping(p.FloorMapping),
		}
		if err := db.Where("name = ?", p.Name).FirstOrCreate(&record, models.Project{Name: p.Name}).Error; err != nil {
			return fmt.Errorf("failed to create project %s: %w", p.Name, err)
		}
		if len(record.FloorMapping) == 0 && len(p.FloorMapping) > 0 {
			record.FloorMapping = toFloorMapping(p.FloorMapping)
			record.FloorPlanURL = p.FloorPlanURL
			if err := db.Save(&record).Error; err != nil {
				return fmt.Errorf("failed to update project %s: %w", p.Name, err)
			}
		}
		projectIDs[p.Name] = record.ID
		log.Printf("Project ready: %s (id=%d)", record.Name, record.ID)
	}

	for _, r := range rooms {
		projectID, ok := projectIDs[r.ProjectName]
		if !ok {
			return fmt.Errorf("room %s references unknown project %s", r.Name, r.ProjectName)
		}
		record := models.Room{
			ProjectID: projectID,
			Name:      r.Name,
			RoomType:  r.RoomType,
			PdfURL:    r.PdfURL,
			Furniture: toFurnitureList(r.Furniture),
		}
		if err := db.Where("project_id = ? AND name = ?", projectID, r.Name).
			FirstOrCreate(&record, models.Room{ProjectID: projectID, Name: r.Name}).Error; err != nil {
			return fmt.Errorf("failed to create room %s: %w", r.Name, err)
		}
		log.Printf("Room ready: %s/%s (id=%d)", r.ProjectName, record.Name, record.ID)
	}

	for _, f := range catalog {
		record := models.FurnitureRecord{
			Name:        f.Name,
			Type:        f.Type,
			Description: f.Description,
			Quantity:    f.Quantity,
			Price:       f.Price,
			Location:    f.Location,
		}
		if err := db.Where("name = ?", f.Name).FirstOrCreate(&record, models.FurnitureRecord{Name: f.Name}).Error; err != nil {
			return fmt.Errorf("failed to create furniture record %s: %w", f.Name, err)
		}
		log.Printf("Catalog entry ready: %s (id=%d)", record.Name, record.ID)
	}

	return nil
}

func toFloorMapping(rows []RoomTypeCountData) models.FloorMapping {
	mapping := make(models.FloorMapping, 0, len(rows))
	for _, row := range rows {
		rt := models.RoomTypeCount{Name: row.Name}
		for _, f := range row.Floors {
			rt.Floors = append(rt.Floors, models.FloorCount{Name: f.Name, Count: f.Count})
		}
		mapping = append(mapping, rt)
	}
	mapping.RecomputeTotals()
	return mapping
}

func toFurnitureList(items []FurnitureItemData) models.FurnitureList {
	list := make(models.FurnitureList, 0, len(items))
	for _, item := range items {
		list = append(list, models.FurnitureItem{
			ID:    uuid.New(),
			Type:  item.Type,
			Count: item.Count,
		})
	}
	return list
}

func loadProjects(dataDir string) ([]ProjectData, error) {
	var file ProjectsFile
	if err := readYAML(filepath.Join(dataDir, "projects.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Projects, nil
}

func loadRooms(dataDir string) ([]RoomData, error) {
	var file RoomsFile
	if err := readYAML(filepath.Join(dataDir, "rooms.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Rooms, nil
}

func loadCatalog(dataDir string) ([]CatalogData, error) {
	var file CatalogFile
	if err := readYAML(filepath.Join(dataDir, "furniture.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Furniture, nil
}

func readYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Skipping %s: file not found", path)
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, target)
}
