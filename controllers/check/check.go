package check

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"fittrack-go-server/database"
	"fittrack-go-server/services/rabbitmq"
	"fittrack-go-server/services/trackLog"
	"fittrack-go-server/utils"

	"github.com/gin-gonic/gin"
)

type AliveResponse struct {
	Success  bool      `json:"success"`
	Messsage string    `json:"message"`
	Info     CheckInfo `json:"info"`
}

type CheckInfo struct {
	Queues     []string `json:"queue"`
	RoutineNum int      `json:"routine_num"`
	DbAlive    bool     `json:"db_alive"`
}

func CheckAlive(c *gin.Context) {
	resMsg := "main thread alive"
	checkInfo := CheckInfo{}

	if database.Mysql != nil && database.Mysql.DB().Ping() == nil {
		checkInfo.DbAlive = true
	} else {
		resMsg = "database unreachable"
		trackLog.Error(resMsg, false)
	}

	if utils.EnvConfig.RabbitMQ.Enable == 1 {
		rabbitConn := rabbitmq.GetConnection("fittrack")
		if rabbitConn != nil {
			if rabbitConn.Conn == nil {
				resMsg = "Api detect Connection lost, Reconnecting.."
				trackLog.Error(resMsg, false)
				if err := rabbitConn.Reconnect(); err != nil {
					resMsg = fmt.Sprintf("reconnect rabbit fail: %s", err.Error())
					trackLog.Error(resMsg, false)
				}
			}
			if rabbitConn.Channel != nil {
				for _, q := range rabbitConn.Queues {
					queue, queueErr := rabbitConn.Channel.QueueInspect(q)
					if queueErr != nil {
						resMsg = fmt.Sprintf("Queue[%s] error: %s\n", q, queueErr.Error())
						trackLog.Error(resMsg, false)
					} else {
						queueJson, _ := json.Marshal(queue)
						checkInfo.Queues = append(checkInfo.Queues, string(queueJson))
					}
				}
			} else {
				resMsg = "Channel get fail"
				trackLog.Error(resMsg, false)
			}
			select {
			case err := <-rabbitConn.ApiErr:
				trackLog.Error(fmt.Sprintf("api error: %s\n", err.Error()), false)
				if err := rabbitConn.Reconnect(); err != nil {
					resMsg = fmt.Sprintf("reconnect rabbit fail: %s\n", err.Error())
					trackLog.Error(resMsg, false)
				}
			case <-time.After(time.Second * 1):
			}
		} else {
			resMsg = "Get connection pool fail"
			trackLog.Error(resMsg, false)
		}
	}

	checkInfo.RoutineNum = runtime.NumGoroutine()

	c.JSON(http.StatusOK, AliveResponse{true, resMsg, checkInfo})
}
