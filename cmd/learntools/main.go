// Package main implements the learntools CLI listing and checking course exercises.
package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"go-ml.dev/pkg/learntools/exercise"
	"go-ml.dev/pkg/learntools/lessons/computervision"
	"go-ml.dev/pkg/learntools/lessons/featureengineering"
	"go-ml.dev/pkg/learntools/tables"
	"go-ml.dev/pkg/learntools/tensor"
	"go-ml.dev/pkg/zorros"
	"go-ml.dev/pkg/zorros/zlog"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	lessonComputerVision     = "computer-vision"
	lessonFeatureEngineering = "feature-engineering"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app carries the flags and the loaded lesson of one invocation
type app struct {
	lesson string
	cfg    *Config
	fe     *featureengineering.Context
	ns     *exercise.Namespace
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "learntools",
		Short: "List and check course exercises",
		Long: `learntools binds lesson exercises as q_1, q_2, ... and checks learner answers.

Examples:
  # List feature engineering exercises
  learntools list

  # Check count encodings written as CSV files
  learntools check q_2 train_encoded.csv valid_encoded.csv

  # Check the pooling exercise
  learntools --lesson computer-vision check q_1 --shape 1,99,99,1`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.lesson, "lesson", lessonFeatureEngineering,
		fmt.Sprintf("lesson to use: %s or %s", lessonFeatureEngineering, lessonComputerVision))

	root.AddCommand(a.listCmd(), a.hintCmd(), a.solutionCmd(), a.splitCmd(), a.checkCmd())
	return root
}

// load binds the lesson problems, the feature engineering lesson loads its dataset
func (a *app) load(ctx context.Context, stderr io.Writer) error {
	if a.ns != nil {
		return nil
	}
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg
	ns := exercise.NewNamespace()
	switch a.lesson {
	case lessonComputerVision:
		_, err = computervision.Bind(ns)
	case lessonFeatureEngineering:
		a.fe, err = featureengineering.Setup(ctx, cfg.Lesson(func(s string) { fmt.Fprintln(stderr, s) }))
		if err == nil {
			_, err = a.fe.Bind(ns)
		}
	default:
		err = zorros.Errorf("unknown lesson `%v`", a.lesson)
	}
	if err != nil {
		return err
	}
	a.ns = ns
	return nil
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bound exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(cmd.Context(), cmd.ErrOrStderr()); err != nil {
				return err
			}
			for _, n := range a.ns.Names() {
				b, _ := a.ns.Get(n)
				line := fmt.Sprintf("%s\t%s", n, b.Problem.Kind())
				if mp, ok := b.Problem.(exercise.MultipartProblem); ok {
					line += "\tparts: " + strings.Join(mp.PartNames(), ",")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func (a *app) hintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hint <problem>",
		Short: "Show the hint of a problem, q_3.a for multipart problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.lookup(cmd, args[0])
			if err != nil {
				return err
			}
			if p.Hint() == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "There is no hint for this problem.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Hint: %s\n", p.Hint())
			return nil
		},
	}
}

func (a *app) solutionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solution <problem>",
		Short: "Show the solution of a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.lookup(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Solution: %s\n", p.Solution())
			return nil
		},
	}
}

func (a *app) lookup(cmd *cobra.Command, name string) (exercise.Problem, error) {
	if err := a.load(cmd.Context(), cmd.ErrOrStderr()); err != nil {
		return nil, err
	}
	return a.ns.Lookup(name)
}

func (a *app) splitCmd() *cobra.Command {
	var fraction float64
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Show sizes of the train, validation and test parts of the lesson dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(cmd.Context(), cmd.ErrOrStderr()); err != nil {
				return err
			}
			if a.fe == nil {
				return zorros.Errorf("lesson `%v` does not have a dataset", a.lesson)
			}
			train, valid, test, err := a.fe.GetDataSplits(fraction)
			if err != nil {
				return err
			}
			for _, p := range []struct {
				name string
				f    tables.Frame
			}{{"train", train}, {"valid", valid}, {"test", test}} {
				ts := p.f.Col(featureengineering.ClickTime).Records()
				if len(ts) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t0\n", p.name)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\t%s\n", p.name, len(ts), ts[0], ts[len(ts)-1])
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&fraction, "valid-fraction", 0.1, "size of validation and test parts as a fraction of the dataset")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	var shape string
	var textTolerance float64
	cmd := &cobra.Command{
		Use:   "check <problem> [csv files...]",
		Short: "Check a problem, frames are read from CSV files in the order of problem variables",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.lookup(cmd, args[0])
			if err != nil {
				return err
			}
			values := []interface{}{}
			if shape != "" {
				t, err := zeros(shape)
				if err != nil {
					return err
				}
				values = append(values, t)
			}
			src := tables.Source{Types: featureengineering.Types}
			for _, path := range args[1:] {
				f, err := src.Read(cmd.Context(), path)
				if err != nil {
					return err
				}
				values = append(values, f)
			}
			if len(args) > 1 {
				p = exercise.Loosen(p, textTolerance)
			}
			r := p.Check(values...)
			if !r.Passed {
				zlog.Warning(fmt.Sprintf("%s check failed", args[0]))
				fmt.Fprintf(cmd.OutOrStdout(), "Incorrect: %v\n", r.Err)
				if f, ok := exercise.AsFailure(r.Err); ok && f.Hint != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Hint: %s\n", f.Hint)
				}
				return zorros.Errorf("%s is not correct", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Correct")
			if r.Explanation != "" {
				fmt.Fprintln(cmd.OutOrStdout(), r.Explanation)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&shape, "shape", "", "comma separated shape of a tensor value, e.g. 1,99,99,1")
	cmd.Flags().Float64Var(&textTolerance, "text-tolerance", tables.TextTolerance, "tolerance of float cells read from CSV files")
	return cmd
}

func zeros(shape string) (tensor.Tensor, error) {
	dims := []int{}
	for _, s := range strings.Split(shape, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || d < 0 {
			return tensor.Tensor{}, zorros.Errorf("bad shape `%v`", shape)
		}
		dims = append(dims, d)
	}
	return tensor.Zeros(dims...), nil
}
