package models

// Profile defines the display attributes for a user
type Profile struct {
	UserID      string            `dynamodbav:"userId" json:"userId"`
	Name        string            `dynamodbav:"name" json:"name"`
	Age         int               `dynamodbav:"age" json:"age"`
	Bio         string            `dynamodbav:"bio" json:"bio"`
	Location    string            `dynamodbav:"location" json:"location"`
	Photos      []string          `dynamodbav:"photos,omitempty" json:"photos"`
	Interests   []string          `dynamodbav:"interests,omitempty" json:"interests"`
	QuizAnswers map[string]string `dynamodbav:"quizAnswers,omitempty" json:"quizAnswers"`
	Vector      []float64         `dynamodbav:"vector,omitempty" json:"vector,omitempty"`
	IsDemo      bool              `dynamodbav:"isDemo,omitempty" json:"isDemo,omitempty"`
}

// DiscoverProfile is a Profile enriched for the discovery queue
type DiscoverProfile struct {
	Profile
	CompatibilityScore int  `json:"compatibilityScore"`
	ReceivedSuperLike  bool `json:"isSuperLike"`
}

// ProfilesTable is the DynamoDB table name for profiles
const ProfilesTable = "Profiles"
