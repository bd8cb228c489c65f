package featureengineering

import (
	"go-ml.dev/pkg/learntools/exercise"
)

var encodedVars = []string{"trainEncoded", "validEncoded"}

// LeakageQuestion asks which rows the encodings should be learned from
var LeakageQuestion = exercise.ThoughtExperiment{Text: exercise.Text{
	SolutionText: "You should calculate the encodings from the training set only. " +
		"Including validation and test data into the encodings overestimates the model's performance. " +
		"In general be vigilant to avoid leakage, that is, including any information from the " +
		"validation and test sets into the model. For a review on this topic, see the lesson on " +
		"[data leakage](https://www.kaggle.com/alexisbcook/data-leakage)",
}}

// CountEncodingEffectiveness asks why count encodings work well
var CountEncodingEffectiveness = exercise.ThoughtExperiment{Text: exercise.Text{
	SolutionText: "Rare values tend to have similar counts (with values like 1 or 2), so you can classify rare " +
		"values together at prediction time. Common values with large counts are unlikely to have " +
		"the same exact count as other values. So, the common and important values get their own grouping.",
}}

// RemoveIPEncoding asks why the ip feature hurts target encoding
var RemoveIPEncoding = exercise.ThoughtExperiment{Text: exercise.Text{
	SolutionText: "Target encoding measures the population mean of the target for each level of a categorical feature. " +
		"With less data per level the estimated mean is further away from the true mean, there is more variance. " +
		"There is little data per IP address, so the estimates are much noisier than for the other features. " +
		"The model relies heavily on this extremely predictive feature and makes fewer splits on other features, " +
		"those are fit on the errors left over after accounting for IP address. So the model performs very poorly " +
		"on new IP addresses that weren't in the training data, which is most new data. " +
		"Going forward, leave out the IP feature when trying different encodings.",
}}

/*
CountEncodings checks count encodings learned from the train part
*/
func (c *Context) CountEncodings() exercise.EqualityCheckProblem {
	return exercise.EqualityCheckProblem{
		Text: exercise.Text{
			HintText: "`encoders.Count` has a `Fit` method to calculate counts and the fitted mapping has a " +
				"`Transform` method to apply the encoding. `model.Encode` joins the encoded columns with a suffix.",
			SolutionText: exercise.CS(`
// Create the count encoder
catFeatures := []string{"ip", "app", "device", "os", "channel"}
countEnc := encoders.Count{Columns: catFeatures}

// Learn encoding from the training set
mapping, err := countEnc.Fit(train, "")

// Apply encoding to the train and validation sets
trainCounts, err := mapping.Transform(train)
trainEncoded, err := tables.Join(train, trainCounts, "_count")
validCounts, err := mapping.Transform(valid)
validEncoded, err := tables.Join(valid, validCounts, "_count")
`),
		},
		Vars:      encodedVars,
		Expected:  []interface{}{c.CountExpected[0], c.CountExpected[1]},
		Tolerance: c.Tolerance,
	}
}

/*
TargetEncodings checks target encodings learned from the train part
*/
func (c *Context) TargetEncodings() exercise.EqualityCheckProblem {
	return exercise.EqualityCheckProblem{
		Text: exercise.Text{
			HintText: "`encoders.Target` learns the encoding with `Fit` and applies it with `Transform` of the fitted mapping. " +
				"You have to tell it which columns are categorical and which column is the target.",
			SolutionText: exercise.CS(`
// Have to tell it which features are categorical
catFeatures := []string{"ip", "app", "device", "os", "channel"}
targetEnc := encoders.Target{Columns: catFeatures}

// Learn encoding from the training set
mapping, err := targetEnc.Fit(train, "is_attributed")

// Apply encoding to the train and validation sets
trainTarget, err := mapping.Transform(train)
trainEncoded, err := tables.Join(train, trainTarget, "_target")
validTarget, err := mapping.Transform(valid)
validEncoded, err := tables.Join(valid, validTarget, "_target")
`),
		},
		Vars:      encodedVars,
		Expected:  []interface{}{c.TargetExpected[0], c.TargetExpected[1]},
		Tolerance: c.Tolerance,
	}
}

/*
CatBoostEncodings checks CatBoost encodings learned from the train part without the ip feature
*/
func (c *Context) CatBoostEncodings() exercise.EqualityCheckProblem {
	return exercise.EqualityCheckProblem{
		Text: exercise.Text{
			HintText: "`encoders.CatBoost` learns the encoding with `Fit` and applies it with `Transform` of the fitted mapping. " +
				"You have to tell it which columns are categorical, leave out the ip column.",
			SolutionText: exercise.CS(`
// The ip feature is left out
catFeatures := []string{"app", "device", "os", "channel"}
cbEnc := encoders.CatBoost{Columns: catFeatures, Params: model.Params{"random_state": 7}}

// Learn encoding from the training set
mapping, err := cbEnc.Fit(train, "is_attributed")

// Apply encoding to the train and validation sets
trainCB, err := mapping.Transform(train)
trainEncoded, err := tables.Join(train, trainCB, "_cb")
validCB, err := mapping.Transform(valid)
validEncoded, err := tables.Join(valid, validCB, "_cb")
`),
		},
		Vars:      encodedVars,
		Expected:  []interface{}{c.CatBoostExpected[0], c.CatBoostExpected[1]},
		Tolerance: c.Tolerance,
	}
}

/*
Exercises returns problems in the lesson order
*/
func (c *Context) Exercises() []exercise.Problem {
	return []exercise.Problem{
		LeakageQuestion,
		c.CountEncodings(),
		CountEncodingEffectiveness,
		c.TargetEncodings(),
		RemoveIPEncoding,
		c.CatBoostEncodings(),
	}
}

/*
Bind binds lesson problems as q_1 ... q_6
*/
func (c *Context) Bind(ns *exercise.Namespace) ([]string, error) {
	return exercise.Bind(ns, c.Exercises(), exercise.TutorialID(TutorialID), exercise.VarFormat("q_{n}"))
}
