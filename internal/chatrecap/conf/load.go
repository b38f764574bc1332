package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/sjzar/chatrecap/internal/errors"
	"github.com/sjzar/chatrecap/internal/model"
)

const (
	AppName   = "chatrecap"
	EnvPrefix = "CHATRECAP"
)

// NewViper 创建带默认值的 viper 实例
// 查找顺序：--config 指定的文件 > 当前目录 > $HOME/.chatrecap
func NewViper(configFile string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(AppName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, "."+AppName))
		}
	}

	d := Defaults()
	v.SetDefault("input", d.Input)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("format", d.Format)
	v.SetDefault("timezone", d.Timezone)
	v.SetDefault("window.start", d.Window.Start)
	v.SetDefault("window.end", d.Window.End)
	v.SetDefault("top_words", d.TopWords)
	v.SetDefault("top_keywords", d.TopKeywords)
	v.SetDefault("segmenter", d.Segmenter)
	v.SetDefault("stop_words", d.StopWords)
	v.SetDefault("topics", d.Topics)
	v.SetDefault("http_addr", d.HTTPAddr)
	v.SetDefault("debug", false)
	return v
}

// LoadDotEnv 加载当前目录下的 .env（存在时），已存在的环境变量不会被覆盖
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			log.Warn().Err(err).Str("file", f).Msg("load .env failed")
		}
	}
}

// Load 读取配置文件（可选）并解析为 Config
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, readError(err)
		}
		log.Debug().Msg("no config file found, using defaults")
	} else {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("config loaded")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg, viper.DecodeHook(decodeHook())); err != nil {
		return nil, readError(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeHook 在 viper 默认 hook 之外，把配置文件中未加引号的日期还原成 YYYY-MM-DD
// YAML 会解析成 time.Time，TOML 会解析成 LocalDate
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		dateToStringHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

func dateToStringHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to.Kind() != reflect.String {
			return data, nil
		}
		switch v := data.(type) {
		case time.Time:
			return v.Format(model.DateLayout), nil
		case fmt.Stringer:
			if from.Kind() == reflect.Struct {
				return v.String(), nil
			}
		}
		return data, nil
	}
}

func readError(err error) error {
	return errors.ConfigInvalid("file", err)
}
