package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"examdocs/internal/bundle"
	"examdocs/internal/config"
	"examdocs/internal/model"
	"examdocs/internal/render"
	"examdocs/internal/roster"
	"examdocs/internal/service"
	"examdocs/internal/session"
)

// examFile is the YAML description of one exam: metadata fields at the top level plus rooms.
type examFile struct {
	model.ExamInfo `yaml:",inline"`
	Rooms          []model.Room `yaml:"rooms"`
}

type generateOptions struct {
	studentsPath string
	examPath     string
	rooms        []string
	output       string
	seed         uint64
	maxCapacity  int
	pageSize     int
	fontFamily   string
	fontPath     string
	fontBoldPath string
}

func newGenerateCmd(cfg *config.AppConfig, logger func() *zap.Logger) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the document bundle for one exam",
		Example: `  examdocs generate --students students.xlsx --exam exam.yaml -o bundle.zip
  examdocs generate --students students.xlsx --exam exam.yaml --room A101:40 --room B202:35 --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rng func() *rand.Rand
			if cmd.Flags().Changed("seed") {
				seed := opts.seed
				rng = func() *rand.Rand { return roster.NewSeededRand(seed) }
			}
			return runGenerate(cmd, opts, rng, logger())
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.studentsPath, "students", "", "Student list workbook (.xlsx)")
	f.StringVar(&opts.examPath, "exam", "", "Exam metadata and rooms (.yaml)")
	f.StringArrayVar(&opts.rooms, "room", nil, "Additional room as NAME:CAPACITY (repeatable)")
	f.StringVarP(&opts.output, "output", "o", bundle.Filename, "Output zip path")
	f.Uint64Var(&opts.seed, "seed", 0, "Shuffle seed for a reproducible assignment")
	f.IntVar(&opts.maxCapacity, "max-capacity", cfg.Exam.MaxRoomCapacity, "Largest allowed room capacity")
	f.IntVar(&opts.pageSize, "page-size", cfg.Exam.PageSize, "Students per attendance page")
	f.StringVar(&opts.fontFamily, "font-family", cfg.Exam.FontFamily, "Name of the TrueType family")
	f.StringVar(&opts.fontPath, "font", cfg.Exam.FontPath, "Regular TrueType font file")
	f.StringVar(&opts.fontBoldPath, "font-bold", cfg.Exam.FontBoldPath, "Bold TrueType font file")
	_ = cmd.MarkFlagRequired("students")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions, rng func() *rand.Rand, logger *zap.Logger) error {
	exam, err := loadExamFile(opts.examPath)
	if err != nil {
		return err
	}
	for _, s := range opts.rooms {
		room, err := parseRoom(s)
		if err != nil {
			return err
		}
		exam.Rooms = append(exam.Rooms, room)
	}

	// A throwaway session applies the same room rules as the API.
	store := session.NewStore(session.Options{MaxCapacity: opts.maxCapacity}, logger)
	sess := store.Create()
	for _, r := range exam.Rooms {
		if err := sess.AddRoom(r); err != nil {
			return fmt.Errorf("room %q: %w", r.Name, err)
		}
	}

	font, err := render.LoadFont(opts.fontFamily, opts.fontPath, opts.fontBoldPath)
	if err != nil {
		return err
	}

	students, err := os.Open(opts.studentsPath)
	if err != nil {
		return fmt.Errorf("failed to open student list: %w", err)
	}
	defer students.Close()

	svc := service.NewExamService(store, nil, nil, service.ExamOptions{
		Font:     font,
		PageSize: opts.pageSize,
		Rand:     rng,
	}, logger)
	res, err := svc.Generate(cmd.Context(), sess.ID, exam.ExamInfo, students)
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.output, res.Archive, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d rooms, %d students, %d files\n",
		opts.output, res.Manifest.Rooms, res.Manifest.Students, len(res.Manifest.Files))
	return nil
}

// loadExamFile decodes path strictly. An empty path yields an empty exam.
func loadExamFile(path string) (*examFile, error) {
	exam := &examFile{}
	if path == "" {
		return exam, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open exam file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(exam); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse exam file %s: %w", path, err)
	}
	return exam, nil
}

// parseRoom reads NAME:CAPACITY. The last colon separates the capacity.
func parseRoom(s string) (model.Room, error) {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return model.Room{}, fmt.Errorf("invalid room %q: want NAME:CAPACITY", s)
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
	if err != nil {
		return model.Room{}, fmt.Errorf("invalid room %q: capacity is not a number", s)
	}
	return model.Room{Name: strings.TrimSpace(s[:i]), Capacity: capacity}, nil
}
