package config

var DefaultConfig = Config{
	Server: ServerConfig{
		Host:            "localhost",
		Port:            8080,
		RateLimit:       10,
		QueueBuffer:     100,
		LongPollSeconds: 25,
	},
	Client: ClientConfig{
		APIURL: "http://localhost:8080",
	},
	Theme: Theme{
		UseColor:  true,
		Black:     33,
		Red:       196,
		Highlight: 226,
		Dim:       240,
	},
}
