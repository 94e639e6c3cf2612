package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no configuration sources", t, func() {
		cfg, err := Load(context.Background())

		Convey("Then the defaults apply", func() {
			So(err, ShouldBeNil)
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.DatasetPath, ShouldEqual, "EA.csv")
		})
	})
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("STAFFSIGHT_ADDR", ":7070")
	t.Setenv("STAFFSIGHT_LOG_LEVEL", "debug")
	t.Setenv("STAFFSIGHT_DATASET_PATH", "/data/employees.csv")

	Convey("Given environment overrides", t, func() {
		cfg, err := Load(context.Background())

		Convey("Then env values win over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.DatasetPath, ShouldEqual, "/data/employees.csv")
		})
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":6060\"\nlog_level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STAFFSIGHT_CONFIG", path)

	Convey("Given a YAML config file", t, func() {
		cfg, err := Load(context.Background())

		Convey("Then file values layer over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":6060")
			So(cfg.LogLevel, ShouldEqual, "warn")
			So(cfg.DatasetPath, ShouldEqual, "EA.csv")
		})
	})
}

func TestLoadFilePlusEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":6060\"\nlog_level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STAFFSIGHT_CONFIG", path)
	t.Setenv("STAFFSIGHT_ADDR", ":5050")

	Convey("Given both a config file and env overrides", t, func() {
		cfg, err := Load(context.Background())

		Convey("Then env values win over the file", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":5050")
			So(cfg.LogLevel, ShouldEqual, "warn")
		})
	})
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("STAFFSIGHT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	Convey("Given an unreadable config file", t, func() {
		_, err := Load(context.Background())

		Convey("Then loading fails with ErrLoadConfig", func() {
			So(errors.Is(err, ErrLoadConfig), ShouldBeTrue)
		})
	})
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("STAFFSIGHT_DATASET_PATH", "")

	Convey("Given an empty required field", t, func() {
		_, err := Load(context.Background())

		Convey("Then validation fails with ErrInvalidConfig", func() {
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
		})
	})
}
