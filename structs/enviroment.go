package structs

type EnviromentModel struct {
	Database database
	RabbitMQ rabbitmq
	Log      log
	Server   server
	Router   router
	Scraper  scraper
	AI       ai
	JWT      jwt
}

type server struct {
	AppAPI string
}

type database struct {
	Client      string
	MaxIdle     uint
	MaxLifeTime string
	MaxOpenConn uint
	User        string
	Password    string
	Host        string
	Db          string
	Params      string
	Port        string
	LogEnable   int
}

type rabbitmq struct {
	Domain string
	Enable int
}

type log struct {
	ElkEnable      int
	ElkIndex       string
	ElkURL         string
	LogstashEnable int
	LogstashURL    string
	LogstashIndex  string
}

type router struct {
	Port int
}

type scraper struct {
	BaseURL        string
	TimeoutSeconds int
	UserAgent      string
}

type ai struct {
	APIKey         string
	BaseURL        string
	Model          string
	TimeoutSeconds int
}

type jwt struct {
	Secret string
}
