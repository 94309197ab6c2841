package model

// Project is a resolved exercise directory.
type Project struct {
	Dir  Path
	Name string
}

// ExerciseConfig mirrors the parts of .exercism/config.json the submission
// step needs.
type ExerciseConfig struct {
	Files struct {
		Solution []string `json:"solution"`
		Test     []string `json:"test"`
	} `json:"files"`
}

// SolutionFiles returns the C++ solution files listed in the config.
func (c ExerciseConfig) SolutionFiles() []string {
	var files []string

	for _, f := range c.Files.Solution {
		if len(f) > 4 && f[len(f)-4:] == ".cpp" {
			files = append(files, f)
		}
	}

	return files
}
