package main

import (
	"context"
	"time"

	"pedestriansense-go/services/banner"
	"pedestriansense-go/services/crossing"
	"pedestriansense-go/services/hal"
	"pedestriansense-go/services/hal/platform"
	"pedestriansense-go/x/console"
	"pedestriansense-go/x/logx"
	"pedestriansense-go/x/timex"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)

	out := console.Open()
	log := logx.New(out, logx.LevelInfo)
	_ = banner.Print(out, banner.Default(platform.Name))

	hw, err := hal.Open(log)
	if err != nil {
		log.Errorf("boot: %v", err)
		for {
			time.Sleep(time.Minute)
		}
	}

	crossing.NewScheduler(crossing.DefaultConfig(), hw, hw, timex.Wall, log).Run(context.Background())
}
