package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// NightlyRepricer định nghĩa interface cho việc chạy lại giá toàn bộ chỗ ở
type NightlyRepricer interface {
	RepriceAll(m *melody.Melody) error
}

var nightlyRepricer NightlyRepricer

// SetNightlyRepricer thiết lập implementation cho NightlyRepricer
func SetNightlyRepricer(repricer NightlyRepricer) {
	nightlyRepricer = repricer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy cập nhật giá phòng lúc: %v", now)
		if nightlyRepricer == nil {
			log.Printf("Lỗi: NightlyRepricer chưa được thiết lập")
			return
		}
		if err := nightlyRepricer.RepriceAll(m); err != nil {
			log.Printf("Lỗi khi cập nhật giá phòng: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
