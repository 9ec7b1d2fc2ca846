package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"userpanel/config"
	"userpanel/database"
	"userpanel/logger"
	"userpanel/web"
	"userpanel/web/service"

	"github.com/op/go-logging"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			if err := database.CloseDB(); err != nil {
				logger.Warning("close db err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

// resetAdmin restores the default admin account credentials, creating the
// account if it is missing. Replaces re-seeding the database by hand.
func resetAdmin() {
	logger.InitLogger(logging.INFO)

	if err := database.InitDB(config.GetDBPath()); err != nil {
		fmt.Println("open database failed:", err)
		return
	}
	defer database.CloseDB()

	userService := service.UserService{}

	account, err := userService.GetUserByUsername("admin")
	if err == service.ErrNotFound {
		account, err = userService.CreateUser("admin", "admin@example.com", "admin123")
	} else if err == nil {
		account, err = userService.UpdateUser(account.Id, account.Username, account.Email, "admin123")
	}
	if err != nil {
		fmt.Println("reset admin failed:", err)
		return
	}
	fmt.Printf("admin account reset: %s / admin123\n", account.Username)
}

func showVersion() {
	fmt.Printf("%v %v\n", config.GetName(), config.GetVersion())
}

func main() {
	config.LoadEnvFile()

	cmd := "run"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "run":
		runWebServer()
	case "reset-admin":
		resetAdmin()
	case "version":
		showVersion()
	default:
		fmt.Println("usage:", os.Args[0], "[run|reset-admin|version]")
		os.Exit(2)
	}
}
