// Package main is the Campus Gradebook demonstration driver. It wires the
// roster, the score ledger, and the persistence backends together and walks
// through a fixed sequence: enroll students, record scores, run the
// representative queries, save and reload the roster, then wait for Enter.
//
// Optional backends are picked up from the environment: DATABASE_URL enables
// the PostgreSQL archive, REDIS_ENABLED + REDIS_URL the ranking cache. Both
// degrade gracefully when unreachable.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/alem-hub/campus-gradebook/config"
	"github.com/alem-hub/campus-gradebook/internal/domain/gradebook"
	"github.com/alem-hub/campus-gradebook/internal/domain/student"
	"github.com/alem-hub/campus-gradebook/internal/infrastructure/persistence/csvfile"
	"github.com/alem-hub/campus-gradebook/internal/infrastructure/persistence/postgres"
	"github.com/alem-hub/campus-gradebook/internal/infrastructure/persistence/redis"
	"github.com/alem-hub/campus-gradebook/internal/infrastructure/service"
	"github.com/alem-hub/campus-gradebook/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. CONFIGURATION & LOGGING
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(logger.Options{
		Output:    os.Stderr,
		Level:     logger.ParseLevel(cfg.App.LogLevel),
		AddCaller: cfg.App.Debug,
	})
	log.Info("starting campus gradebook demo",
		logger.String("env", string(cfg.App.Environment)),
		logger.Path(cfg.Roster.FilePath),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 2. OPTIONAL BACKENDS
	// ─────────────────────────────────────────────────────────────────────────
	var archive *postgres.RosterArchive
	if cfg.ArchiveEnabled() {
		connCtx, connCancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
		conn, err := postgres.NewConnectionFromURL(connCtx, cfg.Database.URL)
		connCancel()
		if err != nil {
			log.Warn("postgres archive unavailable, continuing without it", logger.Err(err))
		} else {
			defer conn.Close()
			archive = postgres.NewRosterArchive(conn)
			if err := archive.EnsureSchema(ctx); err != nil {
				log.Warn("failed to prepare roster archive, continuing without it", logger.Err(err))
				archive = nil
			}
		}
	}

	var cache service.RankingCache
	if cfg.CacheEnabled() {
		client, err := redis.NewClientFromURL(ctx, cfg.Redis.URL)
		if err != nil {
			log.Warn("redis cache unavailable, continuing without it", logger.Err(err))
		} else {
			defer client.Close()
			cache = redis.NewRankingCache(client).WithTTL(cfg.Redis.TTL)
		}
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 3. MANAGERS
	// ─────────────────────────────────────────────────────────────────────────
	roster := student.NewManager()
	scores := gradebook.NewManager()
	ranking := service.NewRankingService(scores, cache, log)
	store := csvfile.NewStore(log)

	// ─────────────────────────────────────────────────────────────────────────
	// 4. ENROLL STUDENTS
	// ─────────────────────────────────────────────────────────────────────────
	fmt.Println("=== Enrolling students ===")
	enrollments := []struct {
		id   string
		name string
		age  int
	}{
		{"2021001", "张三", 20},
		{"2021002", "李四", 19},
		{"2021003", "王五", 21},
	}

	for _, e := range enrollments {
		s, err := student.New(e.id, e.name, e.age)
		if err != nil {
			return fmt.Errorf("failed to create student %s: %w", e.id, err)
		}
		if err := roster.Add(s); err != nil {
			return fmt.Errorf("failed to enroll student %s: %w", e.id, err)
		}
		fmt.Printf("enrolled %s\n", s)
	}

	// A duplicate enrollment is rejected and leaves the roster untouched.
	dup, _ := student.New("2021001", "赵六", 22)
	if err := roster.Add(dup); err != nil {
		fmt.Printf("duplicate enrollment rejected: %v\n", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. RECORD SCORES
	// ─────────────────────────────────────────────────────────────────────────
	fmt.Println("\n=== Recording scores ===")
	records := []struct {
		studentID string
		subject   string
		points    float64
	}{
		{"2021001", "Math", 95.5},
		{"2021001", "Programming", 87.0},
		{"2021002", "Math", 82.0},
		{"2021002", "Programming", 78.5},
		{"2021003", "Math", 90.0},
		{"2021003", "Programming", 90.0},
	}

	for _, r := range records {
		score, err := gradebook.NewScore(r.subject, r.points)
		if err != nil {
			return fmt.Errorf("failed to create score for %s: %w", r.studentID, err)
		}
		if err := ranking.RecordScore(ctx, r.studentID, score); err != nil {
			return fmt.Errorf("failed to record score for %s: %w", r.studentID, err)
		}
		fmt.Printf("recorded %s for %s\n", score, r.studentID)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 6. QUERIES
	// ─────────────────────────────────────────────────────────────────────────
	fmt.Println("\n=== Roster (sorted by ID) ===")
	for _, s := range roster.GetAll() {
		fmt.Println(s)
	}

	fmt.Println("\n=== Students aged 19-20 ===")
	byAge, err := roster.GetStudentsByAge(19, 20)
	if err != nil {
		return err
	}
	for _, s := range byAge {
		fmt.Println(s)
	}

	fmt.Println("\n=== Students with an average of 85 or better ===")
	strong, err := roster.Find(func(s *student.Student) bool {
		avg, err := scores.CalculateAverage(s.ID.String())
		return err == nil && avg >= 85
	})
	if err != nil {
		return err
	}
	for _, s := range strong {
		fmt.Println(s)
	}

	fmt.Println("\n=== Averages and grades ===")
	for _, s := range roster.GetAll() {
		avg, err := ranking.Average(s.ID.String())
		if err != nil {
			return err
		}
		grade, err := gradebook.GradeFor(avg)
		if err != nil {
			return err
		}
		fmt.Printf("%s: average %.2f, grade %s\n", s.Name, avg, grade)
	}

	fmt.Printf("\n=== Top %d students ===\n", cfg.Roster.TopCount)
	for _, entry := range ranking.TopStudents(ctx, cfg.Roster.TopCount) {
		fmt.Println(entry)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 7. PERSISTENCE ROUND-TRIP
	// ─────────────────────────────────────────────────────────────────────────
	fmt.Println("\n=== Saving and reloading roster ===")
	store.SaveStudents(roster.GetAll(), cfg.Roster.FilePath)

	reloaded := store.LoadStudents(cfg.Roster.FilePath)
	fmt.Printf("reloaded %d students from %s\n", len(reloaded), cfg.Roster.FilePath)
	for _, s := range reloaded {
		fmt.Println(s)
	}

	if archive != nil {
		fmt.Println("\n=== Archiving roster to PostgreSQL ===")
		if err := archive.SaveAll(ctx, roster.GetAll()); err != nil {
			log.Warn("failed to archive roster", logger.Err(err))
		} else if restored, err := archive.LoadAll(ctx); err != nil {
			log.Warn("failed to restore archived roster", logger.Err(err))
		} else {
			fmt.Printf("archived and restored %d students via database\n", len(restored))
		}
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 8. DOMAIN EVENT JOURNAL
	// ─────────────────────────────────────────────────────────────────────────
	fmt.Println("\n=== Recorded domain events ===")
	for _, e := range roster.Events() {
		fmt.Printf("%s %s (%s)\n", e.OccurredAt().Format("15:04:05"), e.EventType(), e.AggregateID())
	}
	for _, e := range scores.Events() {
		fmt.Printf("%s %s (%s)\n", e.OccurredAt().Format("15:04:05"), e.EventType(), e.AggregateID())
	}
	for _, e := range store.Events() {
		fmt.Printf("%s %s (%s)\n", e.OccurredAt().Format("15:04:05"), e.EventType(), e.AggregateID())
	}

	fmt.Print("\nPress Enter to exit...")
	bufio.NewReader(os.Stdin).ReadString('\n')

	log.Info("demo finished")
	return nil
}
