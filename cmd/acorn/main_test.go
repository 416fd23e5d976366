package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cv "github.com/smartystreets/goconvey/convey"
)

const metadata = `features:
  outlook: [sunny, overcast, rain]
  temperature: continuous
  humidity: discrete
  windy: [weak, strong]
  play: ["yes", "no"]
`

const records = `sunny,85,high,weak,no
sunny,80,high,strong,no
overcast,83,high,weak,yes
rain,70,high,weak,yes
rain,68,normal,weak,yes
rain,65,normal,strong,no
overcast,64,normal,strong,yes
sunny,72,high,weak,no
sunny,69,normal,weak,yes
rain,75,normal,weak,yes
sunny,75,normal,strong,yes
overcast,72,high,strong,yes
overcast,81,normal,weak,yes
rain,71,high,strong,no
`

func writeFixtures(dir string) (string, string, error) {
	mdPath := filepath.Join(dir, "metadata.yml")
	err := os.WriteFile(mdPath, []byte(metadata), 0644)
	if err != nil {
		return "", "", err
	}
	csvPath := filepath.Join(dir, "tennis.csv")
	err = os.WriteFile(csvPath, []byte(records), 0644)
	return mdPath, csvPath, err
}

func run(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := cliParser()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	cv.Convey("Given a metadata file and a CSV file", t, func() {
		dir := t.TempDir()
		mdPath, csvPath, err := writeFixtures(dir)
		cv.So(err, cv.ShouldBeNil)

		cv.Convey("grow prints the tree", func() {
			out, err := run("grow", "-i", csvPath, "-m", mdPath, "-c", "play")
			cv.So(err, cv.ShouldBeNil)
			cv.So(out, cv.ShouldStartWith, "[outlook]\n")
			cv.So(out, cv.ShouldContainSubstring, "|__outlook is overcast => yes")
		})

		cv.Convey("grow can write the tree in DOT format to a file", func() {
			outPath := filepath.Join(dir, "tree.dot")
			_, err := run("grow", "-i", csvPath, "-m", mdPath, "-c", "play", "-f", "dot", "-o", outPath)
			cv.So(err, cv.ShouldBeNil)
			content, err := os.ReadFile(outPath)
			cv.So(err, cv.ShouldBeNil)
			cv.So(string(content), cv.ShouldStartWith, "digraph G")
		})

		cv.Convey("grow takes its configuration from a file", func() {
			configPath := filepath.Join(dir, "acorn.yml")
			config := "input: " + csvPath + "\nmetadata: " + mdPath + "\noutcome: play\nbranch-domain: subset\n"
			cv.So(os.WriteFile(configPath, []byte(config), 0644), cv.ShouldBeNil)
			out, err := run("grow", "--config", configPath)
			cv.So(err, cv.ShouldBeNil)
			cv.So(out, cv.ShouldStartWith, "[outlook]\n")
		})

		cv.Convey("test reports the success rate", func() {
			out, err := run("test", "-i", csvPath, "-t", csvPath, "-m", mdPath, "-c", "play")
			cv.So(err, cv.ShouldBeNil)
			cv.So(out, cv.ShouldEndWith, "success rate, failed to make a prediction for 0 samples\n")
		})
	})

	cv.Convey("version prints the version", t, func() {
		out, err := run("version")
		cv.So(err, cv.ShouldBeNil)
		cv.So(strings.HasPrefix(out, "acorn v"), cv.ShouldBeTrue)
		cv.So(out, cv.ShouldEqual, "acorn "+version+"\n")
		_, err = run("version", "extra")
		cv.So(err, cv.ShouldNotBeNil)
	})
}

func TestValidate(t *testing.T) {
	cv.Convey("Given a valid configuration", t, func() {
		gc := &growConfig{Metadata: "md.yml", Outcome: "play", Bins: 5, Delimiter: ",", BranchDomain: "dataset", Format: "text"}
		cv.So(gc.Validate(), cv.ShouldBeNil)

		cv.Convey("required values must be set", func() {
			gc.Metadata = ""
			cv.So(gc.Validate(), cv.ShouldNotBeNil)
		})

		cv.Convey("bins must be positive", func() {
			gc.Bins = 0
			cv.So(gc.Validate(), cv.ShouldNotBeNil)
		})

		cv.Convey("branch domain and format are restricted", func() {
			gc.BranchDomain = "everything"
			cv.So(gc.Validate(), cv.ShouldNotBeNil)
			gc.BranchDomain = "subset"
			gc.Format = "json"
			cv.So(gc.Validate(), cv.ShouldNotBeNil)
		})

		cv.Convey("database inputs need their table or collection", func() {
			gc.Input = "records.db"
			cv.So(gc.Validate(), cv.ShouldNotBeNil)
			gc.Table = "records"
			cv.So(gc.Validate(), cv.ShouldBeNil)
			gc.Input = "mongodb://localhost:27017"
			cv.So(gc.Validate(), cv.ShouldNotBeNil)
			gc.Database, gc.Collection = "acorn", "records"
			cv.So(gc.Validate(), cv.ShouldBeNil)
		})

		cv.Convey("testing needs a test input", func() {
			tc := &testConfig{growConfig: *gc}
			cv.So(tc.Validate(), cv.ShouldNotBeNil)
			tc.TestInput = "test.csv"
			cv.So(tc.Validate(), cv.ShouldBeNil)
		})
	})
}
