package index

// Bootstrap knowledge every conversation is seeded with: general contribution
// practice, a roster of repositories known to welcome newcomers, and
// per-language starting points.

var contributingGuides = []string{
	"Contributing to open source requires: 1) Finding a project 2) Understanding the codebase 3) Picking an issue 4) Making changes 5) Submitting a PR",
	"Good first issues are typically labeled with 'good first issue', 'beginner friendly', 'easy', or 'help wanted' tags on GitHub",
	"The typical contribution workflow includes: fork the repo, clone locally, create branch, make changes, commit, push, and open a PR",
	"Documentation contributions are excellent for beginners as they help you learn the codebase while making valuable additions",
	"Bug fixes are another good entry point, especially for simple issues that don't require deep knowledge of the codebase",
	"Testing contributions help ensure the project's reliability and are often welcoming to new contributors",
	"Always read the project's README and CONTRIBUTING guides before starting work",
	"Many projects require tests and documentation for new features or bug fixes",
	"Code style and conventions vary by project - look for a style guide or follow the existing patterns",
	"Communication is key - don't hesitate to ask questions in issues or pull requests",
	"Open source etiquette includes being respectful, patient, and open to feedback",
	"Your first PR might not be perfect, and that's okay - the review process is a learning opportunity",
	"Different projects have different review processes and response times - be patient",
}

var reposInfo = []string{
	"freeCodeCamp/freeCodeCamp: Learn to code for free with millions of learners. Great for beginners with issues spanning various difficulty levels.",
	"firstcontributions/first-contributions: Specifically designed to help beginners make their first contribution with a step-by-step guide.",
	"tensorflow/tensorflow: Machine learning framework with many beginner-friendly issues and excellent documentation.",
	"microsoft/vscode: Popular code editor with active community and well-labeled issues for newcomers.",
	"kubernetes/kubernetes: Container orchestration platform with 'good first issue' labels and comprehensive contributor guides.",
	"flutter/flutter: UI toolkit with many entry-level tasks and supportive community.",
	"rust-lang/rust: Systems programming language with mentored issues for beginners.",
	"home-assistant/core: Home automation platform with various complexity levels of issues.",
	"scikit-learn/scikit-learn: Machine learning library with detailed contribution guidelines and mentor support.",
	"mozilla/firefox-ios: iOS browser with well-documented codebase and beginner issues.",
	"electron/electron: Framework for building cross-platform desktop apps with JS, HTML, and CSS.",
	"NixOS/nixpkgs: Package collection with many simple package updates perfect for first-time contributors.",
	"pandas-dev/pandas: Data analysis library with issues suitable for Python beginners.",
	"react-native-community: Collection of packages supporting React Native with many entry points.",
	"ethereum/ethereum-org-website: Ethereum's website with content and translation tasks ideal for non-developers.",
}

var languageSpecific = []string{
	"Python beginners might enjoy contributing to Django, Flask, FastAPI, or Pytest.",
	"JavaScript developers can start with React, Vue.js, or Express projects.",
	"Java contributors can look at Spring Boot or Apache projects.",
	"Ruby beginners often start with Rails or Jekyll.",
	"Go developers can contribute to Docker, Kubernetes, or Hugo.",
	"Rust learners might enjoy working on Rustlings or Rust-Analyzer.",
	"C# developers can contribute to .NET projects or Unity.",
	"PHP contributors can work on Laravel, Symfony, or WordPress.",
	"C/C++ developers might consider SQLite, Redis, or various Linux projects.",
}

// BootstrapTexts returns the base knowledge corpus, optionally extended with
// curated session-specific texts.
func BootstrapTexts(curated ...string) []string {
	texts := make([]string, 0, len(contributingGuides)+len(reposInfo)+len(languageSpecific)+len(curated))
	texts = append(texts, contributingGuides...)
	texts = append(texts, reposInfo...)
	texts = append(texts, languageSpecific...)
	texts = append(texts, curated...)
	return texts
}
