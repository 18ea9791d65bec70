package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/internal/integrations/timetable"
	"github.com/m04kA/SMC-RoomFinderService/pkg/logger"
)

// roomscan - оффлайн утилита сборки каталога комнат
// Перебирает диапазон числовых ID против сервиса расписаний: ID валиден,
// если сервис отвечает разбираемым расписанием. Результат пишется в JSON файл,
// который сервис загружает при старте
//
// Между запросами выдерживается пауза - сервис расписаний режет частые запросы
func main() {
	var (
		baseURL = flag.String("url", "", "base URL of the timetable service (required)")
		from    = flag.Int64("from", 4000, "first room id to probe")
		to      = flag.Int64("to", 6000, "last room id to probe (inclusive)")
		out     = flag.String("out", "valid_rooms.json", "output catalog file")
		delayMs = flag.Int("delay-ms", 500, "pause between probes, milliseconds")
		timeout = flag.Int("timeout", 10, "per-request timeout, seconds")
	)
	flag.Parse()

	if *baseURL == "" {
		fmt.Println("roomscan: -url is required")
		flag.Usage()
		os.Exit(1)
	}
	if *from > *to {
		fmt.Println("roomscan: -from must be <= -to")
		os.Exit(1)
	}

	log, err := logger.New("", "info")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	client := timetable.NewClient(*baseURL, time.Duration(*timeout)*time.Second, log)
	ctx := context.Background()

	log.Info("Scanning room ids %d..%d against %s", *from, *to, *baseURL)

	validRooms := make([]domain.Room, 0)

	for roomID := *from; roomID <= *to; roomID++ {
		room, err := client.GetRoomSchedule(ctx, roomID)
		if err != nil {
			log.Info("Room %d is invalid: %v", roomID, err)
		} else {
			buildingName := room.BuildingLabel()
			validRooms = append(validRooms, domain.Room{
				ID:           roomID,
				BuildingName: buildingName,
			})
			log.Info("Room %d is valid, building: %s", roomID, buildingName)
		}

		if roomID < *to {
			time.Sleep(time.Duration(*delayMs) * time.Millisecond)
		}
	}

	data, err := json.MarshalIndent(validRooms, "", "  ")
	if err != nil {
		log.Fatal("Failed to marshal catalog: %v", err)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal("Failed to write catalog file %s: %v", *out, err)
	}

	log.Info("Saved %d valid rooms to %s", len(validRooms), *out)
}
