package config

import "textproxy/internal/constants"

const defaultPort = 8000

func defaultFileConfig() *FileConfig {
	temp := constants.DefaultChatTemperature
	return &FileConfig{
		Port:                     defaultPort,
		GroqAPIURL:               constants.DefaultEndpoint,
		GroqModel:                constants.DefaultModel,
		GroqTemperature:          &temp,
		DialTimeoutSec:           int(constants.DefaultDialTimeout.Seconds()),
		TLSHandshakeTimeoutSec:   int(constants.DefaultTLSHandshakeTimeout.Seconds()),
		ResponseHeaderTimeoutSec: int(constants.DefaultResponseHeaderTimeout.Seconds()),
		RequestTimeoutSec:        int(constants.UpstreamRequestTimeout.Seconds()),
	}
}
