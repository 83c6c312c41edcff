//go:build datagen
// +build datagen

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"placedir/src/domain/entities"
	"placedir/src/helper/env"
	"placedir/src/infra/postgres"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Bounding box of the served city; generated coordinates stay inside it.
const (
	minLat = 8.3
	maxLat = 8.6
	minLng = 124.5
	maxLng = 124.8
)

var categories = []string{
	entities.CategoryMall,
	entities.CategoryRestaurant,
	entities.CategoryDormHotel,
	entities.CategoryLandmark,
}

func newSQLClient() (*pgxpool.Pool, error) {
	dbHost := env.MustGetString("DB_HOST")
	dbPort := env.GetString("DB_PORT", "5432")
	dbname := env.MustGetString("DB_NAME")
	dbUser := env.MustGetString("DB_USER")
	dbPassword := env.MustGetString("DB_PASSWORD")
	maxConnections := 20
	return postgres.NewPostgresClient(dbHost, dbPort, dbname, dbUser, dbPassword, maxConnections)
}

func main() {
	rand.Seed(time.Now().UnixNano())

	numRecords := flag.Int("records", 10000, "Number of establishments to create. Use -1 for infinite.")
	bulkSize := flag.Int("bulk-size", 500, "Rows per COPY batch")
	numConsumers := flag.Int("consumers", 4, "Concurrent insert workers")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := newSQLClient()
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer db.Close()

	dataChan := make(chan entities.Establishment, (*bulkSize)*(*numConsumers)*2)

	var wg sync.WaitGroup
	var totalProcessed, totalErrors int64
	startTime := time.Now()

	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				processed := atomic.LoadInt64(&totalProcessed)
				errors := atomic.LoadInt64(&totalErrors)
				elapsed := time.Since(startTime)
				rate := float64(processed) / elapsed.Seconds()

				fmt.Printf("📊 Processed: %d | Errors: %d | Rate: %.1f/s | Elapsed: %v\n",
					processed, errors, rate, elapsed.Round(time.Second))
			}
		}
	}()

	for i := 0; i < *numConsumers; i++ {
		wg.Add(1)
		go consumer(ctx, &wg, db, dataChan, *bulkSize, i+1, &totalProcessed, &totalErrors)
	}

	wg.Add(1)
	go producer(ctx, &wg, dataChan, *numRecords)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n🛑 Shutdown signal received, stopping...")
		cancel()
	}()

	wg.Wait()

	elapsed := time.Since(startTime)
	processed := atomic.LoadInt64(&totalProcessed)
	errors := atomic.LoadInt64(&totalErrors)

	fmt.Printf("\n🏁 Seeding finished!\n")
	fmt.Printf("📊 Total processed: %d\n", processed)
	fmt.Printf("❌ Total errors: %d\n", errors)
	fmt.Printf("⏱️  Total time: %v\n", elapsed.Round(time.Second))
}

func producer(ctx context.Context, wg *sync.WaitGroup, dataChan chan<- entities.Establishment, numRecords int) {
	defer wg.Done()
	defer close(dataChan)

	isInfinite := numRecords == -1
	count := 0

	for isInfinite || count < numRecords {
		select {
		case <-ctx.Done():
			fmt.Println("Producer stopping.")
			return
		case dataChan <- generateFakeEstablishment():
			count++
			if count%1000 == 0 {
				fmt.Printf("Generated %d establishments\n", count)
			}
		}
	}
}

func generateFakeEstablishment() entities.Establishment {
	category := categories[rand.Intn(len(categories))]
	name := faker.GetRealAddress().City + " " + faker.Word() + " " + faker.LastName()

	var description string
	if rand.Float64() < 0.7 {
		description = faker.Sentence()
	}

	return entities.Establishment{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    category,
		Rating:      float64(rand.Intn(51)) / 10,
		Description: description,
		Lat:         minLat + rand.Float64()*(maxLat-minLat),
		Lng:         minLng + rand.Float64()*(maxLng-minLng),
	}
}

func consumer(ctx context.Context, wg *sync.WaitGroup, db *pgxpool.Pool, dataChan <-chan entities.Establishment, bulkSize, consumerID int, totalProcessed, totalErrors *int64) {
	defer wg.Done()

	batch := make([]entities.Establishment, 0, bulkSize)
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := bulkInsert(ctx, db, batch); err != nil {
			log.Printf("❌ Consumer %d: ERROR on bulk insert: %v", consumerID, err)
			atomic.AddInt64(totalErrors, 1)
		} else {
			atomic.AddInt64(totalProcessed, int64(len(batch)))
		}
		batch = make([]entities.Establishment, 0, bulkSize)
	}

	for {
		select {
		case record, ok := <-dataChan:
			if !ok {
				flush()
				log.Printf("✅ Consumer %d stopping.", consumerID)
				return
			}
			batch = append(batch, record)
			if len(batch) >= bulkSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-ctx.Done():
			log.Printf("🛑 Consumer %d received stop signal.", consumerID)
			return
		}
	}
}

func bulkInsert(ctx context.Context, db *pgxpool.Pool, batch []entities.Establishment) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	rows := make([][]any, 0, len(batch))
	for _, record := range batch {
		var description *string
		if record.Description != "" {
			description = &record.Description
		}
		rows = append(rows, []any{record.ID, record.Name, record.Category, record.Rating, description, record.Lat, record.Lng})
	}

	_, err := db.CopyFrom(
		ctx,
		pgx.Identifier{"establishments"},
		[]string{"id", "name", "category", "rating", "description", "lat", "lng"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to copy establishments: %w", err)
	}
	return nil
}
