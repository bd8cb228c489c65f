/*
Package computervision implements checks of the maximum pooling exercise
*/
package computervision

import (
	"fmt"
	"go-ml.dev/pkg/learntools/exercise"
	"go-ml.dev/pkg/learntools/tensor"
	"strings"
)

// CondensedSize is the squeezed size of the condensed image
var CondensedSize = []int{99, 99}

/*
Condense is the reference max pooling of the detected image
*/
func Condense(imageDetect tensor.Tensor) (tensor.Tensor, error) {
	return tensor.Pool(imageDetect, tensor.PoolOptions{
		Window:  []int{2, 2},
		Strides: []int{2, 2},
		Type:    tensor.Max,
		Padding: tensor.Same,
	})
}

func shapeString(s []int) string {
	q := make([]string, len(s))
	for i, x := range s {
		q[i] = fmt.Sprint(x)
	}
	return "[" + strings.Join(q, ", ") + "]"
}

func checkCondense(values ...interface{}) error {
	t, ok := values[0].(tensor.Tensor)
	if !ok {
		return &exercise.Failure{Var: "imageCondense", Message: fmt.Sprintf("expected a tensor.Tensor, but got %T", values[0])}
	}
	size := t.Squeeze().Shape()
	if shapeString(size) != shapeString(CondensedSize) {
		return &exercise.Failure{
			Var:      "imageCondense",
			Expected: CondensedSize,
			Actual:   size,
			Message: fmt.Sprintf("The size of `imageCondense` should be `%s`, but actually is `%s`. "+
				"Did you use `Padding: tensor.Same` and `Strides: []int{2}`?", shapeString(CondensedSize), shapeString(size)),
		}
	}
	return nil
}

// Q1 condenses the image with maximum pooling
var Q1 = exercise.CodingProblem{
	Text: exercise.Text{
		HintText: "You'll need `Window: []int{2}` and `Type: tensor.Max`.",
		SolutionText: exercise.CS(`
imageCondense, err := tensor.Pool(imageDetect, tensor.PoolOptions{
	Window:  []int{2}, // or []int{2, 2}
	Strides: []int{2}, // or []int{2, 2}
	Type:    tensor.Max,
	Padding: tensor.Same,
})
`),
	},
	Vars:    []string{"imageCondense"},
	Checker: checkCondense,
}

// Q2 asks whether shifted circles would help the classifier
var Q2 = exercise.ThoughtExperiment{Text: exercise.Text{
	HintText: "If you only had the final output to look at, would you be able to pick which circle originally produced it?",
	SolutionText: `It would not help. Maximum pooling creates *translation invariance over small distances*: ` +
		`each of the shifted inputs is reduced to the same output, so no extra information reaches the head for classification.

This invariance holds over *small* distances only. Translating the circle by a larger amount could actually improve the classification. ` +
		`Transforming images in random ways whenever they are used in training is known as **data augmentation**, ` +
		`a common way of improving a classifier covered in Lesson 6.`,
}}

// Q3A is a free coding part, the learner only runs the pooling code
var Q3A = exercise.CodingProblem{}

// Q3B asks what global average pooling produces from the VGG16 feature maps
var Q3B = exercise.ThoughtExperiment{Text: exercise.Text{
	HintText: "VGG16 creates 512 feature maps from an image, which might represent something like a wheel or a window. " +
		"Each square in *Pooled Feature Maps* represents a feature. What would a large value for a feature mean?",
	SolutionText: `The VGG16 base produces 512 feature maps, each representing some high-level visual feature of the image, maybe a wheel or a window. ` +
		`Pooling a map gives a single number, a *score* for that feature: large if the feature is present and small if it is absent. ` +
		`Cars tend to score high with one set of features and Trucks with another. ` +
		`Instead of mapping raw features to classes, the head only has to work with the scores global average pooling produced, a much easier problem.`,
}}

// Q3 groups the free pooling part and the feature scores question
var Q3 = exercise.NewMultipart(Q3A, Q3B)

/*
Exercises returns problems in the lesson order
*/
func Exercises() []exercise.Problem {
	return []exercise.Problem{Q1, Q2, Q3}
}

/*
Bind binds lesson problems as q_1, q_2, q_3
*/
func Bind(ns *exercise.Namespace) ([]string, error) {
	return exercise.Bind(ns, Exercises(), exercise.VarFormat("q_{n}"))
}
