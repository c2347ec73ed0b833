package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"

	"fittrack-go-server/database"
	"fittrack-go-server/enums"
	"fittrack-go-server/router"
	"fittrack-go-server/services"
	"fittrack-go-server/services/challenge"
	"fittrack-go-server/services/food"
	"fittrack-go-server/services/health"
	"fittrack-go-server/services/rabbitmq"
	"fittrack-go-server/services/scraper"
	"fittrack-go-server/services/trackLog"
	"fittrack-go-server/structs"
	"fittrack-go-server/utils"

	logLib "fittrack-go-server/services/log"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

func main() {

	var envService utils.EnvService
	envService.InitEnv()
	fmt.Println("env loaded...")

	database.InitDatabasePool()
	_ = services.InsertActivityLog(database.Mysql, "server.init", "fittrack-go-server startup")
	if err := challenge.NewChallengeService(database.Mysql).SeedDefaults(); err != nil {
		log.Fatalf("seed challenges: %s", err)
	}
	trackLog.LogTrackInit()

	defer func() {
		var logService logLib.LogService
		logwr := logService.LoggerInit("main")
		logwr.WithFields(logrus.Fields{"task": "main"}).Error("server shutdown")
		fmt.Println("server shutdown")
	}()

	route := router.Router()

	var wg sync.WaitGroup
	wg.Add(1)
	go route.Run(fmt.Sprintf(":%d", utils.EnvConfig.Router.Port))

	if utils.EnvConfig.RabbitMQ.Enable == 1 {
		wg.Add(1)
		go FittrackQueue()
	}

	wg.Wait()
}

func FittrackQueue() {
	conn := rabbitmq.NewConnection("fittrack", []string{enums.QueueFoodScrape})

	if err := conn.Connect(); err != nil {
		panic(err)
	}
	if err := conn.BindQueue(); err != nil {
		panic(err)
	}
	deliveries, err := conn.Consume()
	if err != nil {
		panic(err)
	}

	for q, d := range deliveries {
		go conn.HandleConsumedDeliveries(q, d, FittrackHandler)
	}
	log.Printf(" [ fittrack ] [ %s ] Waiting for messages. To exit press CTRL+C", enums.QueueFoodScrape)
}

func FittrackHandler(c rabbitmq.Connection, q string, deliveries <-chan amqp.Delivery) {
	for d := range deliveries {

		trackLog.Info(fmt.Sprintf("Queue[%s] received: %s\n", q, string(d.Body)), true)

		if q == enums.QueueFoodScrape {
			var scrapeParam structs.ScrapeQueueParam
			if err := json.Unmarshal(d.Body, &scrapeParam); err != nil {
				fmt.Println(err.Error())
				continue
			}
			if q != scrapeParam.QueueType {
				trackLog.Error(fmt.Sprintf("[MismatchQueue] task_id: %d, queue: %s, queue_type: %s", scrapeParam.TaskID, q, scrapeParam.QueueType), true)
				continue
			}

			_ = services.InsertActivityLog(database.Mysql, "queue.food-scrape.received", "("+strconv.Itoa(int(scrapeParam.TaskID))+"), queue name: "+q+", start...")

			svc := food.NewFoodService(database.Mysql, scraper.NewClientFromEnv(), health.NewHealthService(database.Mysql))
			written, err := svc.Scrape(context.Background(), scrapeParam.Query, scrapeParam.Limit)
			if err != nil {
				trackLog.Error(fmt.Sprintf("scrape %q fail: %s", scrapeParam.Query, err.Error()), true)
				continue
			}
			trackLog.Info(fmt.Sprintf("scrape %q done, %d items written", scrapeParam.Query, written), true)
		}
	}
}
