// Package job contains the scheduled maintenance jobs run by the web server.
package job

import (
	"os"

	"userpanel/logger"
)

// ClearLogsJob truncates the panel log file so it cannot grow unbounded.
type ClearLogsJob struct{}

func NewClearLogsJob() *ClearLogsJob {
	return new(ClearLogsJob)
}

// Run implements cron.Job.
func (j *ClearLogsJob) Run() {
	logPath := logger.GetLogPath()
	if logPath == "" {
		return
	}
	if err := os.Truncate(logPath, 0); err != nil && !os.IsNotExist(err) {
		logger.Warning("clear logs job err:", err)
	}
}
