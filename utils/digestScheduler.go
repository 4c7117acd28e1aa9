package utils

import (
	"log"
	"time"

	"quizcert/config"
	"quizcert/database"
	"quizcert/models"

	"github.com/robfig/cron/v3"
)

// InitializeDigestScheduler sets up the daily results digest
func InitializeDigestScheduler() *cron.Cron {
	log.Println("[DIGEST-SCHEDULER] Initializing results digest scheduler...")

	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.DigestSchedule, func() {
		log.Println("[DIGEST-SCHEDULER] Running daily results digest...")
		RunResultsDigest()
	}); err != nil {
		log.Printf("[DIGEST-SCHEDULER] Invalid schedule %q: %v", config.AppConfig.DigestSchedule, err)
		return c
	}

	c.Start()
	log.Printf("[DIGEST-SCHEDULER] Results digest scheduler started - schedule %q", config.AppConfig.DigestSchedule)
	return c
}

// RunResultsDigest logs per-quiz attempt and pass counts for the last day
func RunResultsDigest() {
	db := database.Database.Db
	since := time.Now().AddDate(0, 0, -1)

	type digestRow struct {
		QuizID   uint
		Attempts int64
		Passes   int64
	}

	var rows []digestRow
	if err := db.Model(&models.Result{}).
		Select("quiz_id, count(*) as attempts, sum(case when passed then 1 else 0 end) as passes").
		Where("created_at >= ?", since).
		Group("quiz_id").
		Scan(&rows).Error; err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error aggregating results: %v", err)
		return
	}

	if len(rows) == 0 {
		log.Println("[DIGEST-SCHEDULER] No submissions in the last 24h")
		return
	}

	for _, row := range rows {
		var quiz models.Quiz
		if err := db.Where("id = ?", row.QuizID).First(&quiz).Error; err != nil {
			log.Printf("[DIGEST-SCHEDULER] Error fetching quiz %d: %v", row.QuizID, err)
			continue
		}

		log.Printf("[DIGEST-SCHEDULER] %q: %d attempts, %d passed in the last 24h",
			quiz.Title, row.Attempts, row.Passes)
	}
}
