package featureengineering

import (
	"go-ml.dev/pkg/learntools/model"
	"go-ml.dev/pkg/learntools/model/encoders"
	"go-ml.dev/pkg/learntools/tables"
)

/*
CountEncodingsSolution learns counts of categories from the train part
and joins them as <feature>_count columns
*/
func CountEncodingsSolution(s model.Split) (train, valid tables.Frame, err error) {
	return model.Encode(encoders.Count{Columns: CatFeatures}, s, IsAttributed, "_count")
}

/*
TargetEncodingsSolution learns target encodings from the train part
and joins them as <feature>_target columns
*/
func TargetEncodingsSolution(s model.Split) (train, valid tables.Frame, err error) {
	return model.Encode(encoders.Target{Columns: CatFeatures}, s, IsAttributed, "_target")
}

/*
CatBoostEncodingsSolution learns CatBoost encodings of all features except ip
and joins them as <feature>_cb columns
*/
func CatBoostEncodingsSolution(s model.Split) (train, valid tables.Frame, err error) {
	e := encoders.CatBoost{Columns: CatFeatures[1:], Params: model.Params{"random_state": 7}}
	return model.Encode(e, s, IsAttributed, "_cb")
}
