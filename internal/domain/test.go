package domain

// TestCase is a manual test case scraped from a Markdown test plan
type TestCase struct {
	Title          string `json:"title"`
	Steps          string `json:"steps"`
	ExpectedResult string `json:"expected_result"`
}

// Record returns the CSV row for the test case
func (tc TestCase) Record() []string {
	return []string{tc.Title, tc.Steps, tc.ExpectedResult}
}

// HasSteps reports whether the case had a Steps block
func (tc TestCase) HasSteps() bool {
	return tc.Steps != ""
}
