package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/interrupt21h/radioref/internal/logging"
	"github.com/interrupt21h/radioref/pkg/format"
	"github.com/interrupt21h/radioref/pkg/radioreference"
)

type config struct {
	LogLevel        string `env:"LOG_LEVEL" envDefault:"error"`
	SnapshotFile    string `env:"SNAPSHOT_FILE,required"`
	TalkgroupFormat string `env:"TALKGROUP_FORMAT" envDefault:"decimal"`
}

// snapshot is a locally produced JSON dump of catalog records, one array per
// record kind plus the talkgroups to classify.
type snapshot struct {
	Types      []radioreference.Type   `json:"types"`
	Flavors    []radioreference.Flavor `json:"flavors"`
	Voices     []radioreference.Voice  `json:"voices"`
	Tags       []radioreference.Tag    `json:"tags"`
	Systems    []radioreference.System `json:"systems"`
	Talkgroups []talkgroupEntry        `json:"talkgroups"`
}

type talkgroupEntry struct {
	SystemID  int                      `json:"system_id"`
	Talkgroup radioreference.Talkgroup `json:"talkgroup"`
}

type classification struct {
	SystemID    int      `json:"system_id"`
	Protocol    string   `json:"protocol"`
	DecoderType string   `json:"decoder_type,omitempty"`
	Talkgroup   string   `json:"talkgroup"`
	Tags        []string `json:"tags,omitempty"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("could not parse config: %s", err)
	}

	slogLevel, err := logging.LogLevelToSlogLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("could not convert log level: %s", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel,
	})))

	snapshotBytes, err := os.ReadFile(cfg.SnapshotFile)
	if err != nil {
		slog.Error("could not read snapshot file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var snap snapshot
	if err := json.Unmarshal(snapshotBytes, &snap); err != nil {
		slog.Error("could not unmarshal snapshot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pref, err := format.PreferenceFromConfig(&format.Config{TalkgroupFormat: cfg.TalkgroupFormat})
	if err != nil {
		slog.Error("could not build talkgroup format preference", slog.String("error", err.Error()))
		os.Exit(1)
	}

	typeMap := make(map[int]radioreference.Type, len(snap.Types))
	for _, t := range snap.Types {
		typeMap[t.TypeID] = t
	}

	flavorMap := make(map[int]radioreference.Flavor, len(snap.Flavors))
	for _, f := range snap.Flavors {
		flavorMap[f.FlavorID] = f
	}

	voiceMap := make(map[int]radioreference.Voice, len(snap.Voices))
	for _, v := range snap.Voices {
		voiceMap[v.VoiceID] = v
	}

	tagMap := make(map[int]radioreference.Tag, len(snap.Tags))
	for _, tag := range snap.Tags {
		tagMap[tag.TagID] = tag
	}

	decoder := radioreference.NewDecoder(pref, typeMap, flavorMap, voiceMap, tagMap)

	systems := make(map[int]radioreference.System, len(snap.Systems))
	for _, sys := range snap.Systems {
		systems[sys.SystemID] = sys
	}

	for _, entry := range snap.Talkgroups {
		sys, ok := systems[entry.SystemID]
		if !ok {
			slog.Warn("talkgroup references unknown system", slog.Int("system_id", entry.SystemID))
			continue
		}

		out := classification{
			SystemID:    entry.SystemID,
			Protocol:    decoder.Protocol(sys).String(),
			DecoderType: decoder.DecoderType(sys).String(),
			Talkgroup:   decoder.Format(entry.Talkgroup, sys),
		}

		for _, tag := range decoder.Tags(entry.Talkgroup) {
			out.Tags = append(out.Tags, tag.Name)
		}

		jsonBytes, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			slog.Error("could not marshal classification to JSON", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Println(string(jsonBytes))
	}
}
