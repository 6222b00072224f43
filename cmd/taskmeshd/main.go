// taskmeshd replays an ordered operation stream against the contract state
// machine. The ordering layer itself (consensus, transport) is out of scope;
// whatever produces the stream, taskmeshd applies it deterministically and
// journals every accepted operation.
package main

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"taskmesh/contract"
	"taskmesh/sdk"
	"taskmesh/store"
)

type opLine struct {
	Env     sdk.Env `json:"env"`
	Op      string  `json:"op"`
	Payload string  `json:"payload"`
}

func main() {
	viper.SetDefault("data_dir", "data/badger")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("ops_file", "-")
	viper.SetDefault("init_payload", "")
	viper.SetConfigName("taskmeshd")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/taskmesh")
	viper.SetEnvPrefix("taskmesh")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			println("config error:", err.Error())
			os.Exit(1)
		}
	}

	level, err := zerolog.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	st, err := store.Open(viper.GetString("data_dir"), log)
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}
	defer st.Close()

	input := os.Stdin
	if f := viper.GetString("ops_file"); f != "-" {
		input, err = os.Open(f)
		if err != nil {
			log.Fatal().Err(err).Msg("open ops file")
		}
		defer input.Close()
	}

	applied, rejected := 0, 0
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var op opLine
		if err := json.Unmarshal([]byte(line), &op); err != nil {
			log.Error().Err(err).Msg("bad op line")
			rejected++
			continue
		}
		if op.Op == "init" {
			if _, err := st.Init(op.Env, op.Payload); err != nil {
				log.Error().Err(err).Msg("init rejected")
				rejected++
			} else {
				applied++
			}
			continue
		}
		res, err := st.Apply(op.Env, op.Op, op.Payload)
		if err != nil {
			rejected++
			continue
		}
		applied++
		log.Debug().Str("op", op.Op).Str("result", res).Msg("applied")
	}
	if err := scanner.Err(); err != nil {
		log.Fatal().Err(err).Msg("read ops")
	}

	if err := st.View(func(host sdk.Host) error {
		price, err := contract.CurrentPrice(host)
		if err != nil {
			return err
		}
		l := contract.GetLedger(host)
		log.Info().
			Int64("price", int64(price)).
			Int64("token_supply", int64(l.TokenSupply)).
			Int64("wei_pool", int64(l.WeiPool)).
			Int("projects", len(contract.ListProjects(host))).
			Msg("final state")
		return nil
	}); err != nil {
		log.Warn().Err(err).Msg("state summary unavailable")
	}
	log.Info().Int("applied", applied).Int("rejected", rejected).Msg("replay done")
}
