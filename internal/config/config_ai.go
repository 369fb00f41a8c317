package config

// applyOperationDefaults applies global defaults to operation-specific configuration
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Model == "" {
		opCfg.Model = c.AI.Model
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	if opCfg.MaxRetries == nil {
		opCfg.MaxRetries = &c.AI.MaxRetries
	}
	if opCfg.Temperature == nil {
		opCfg.Temperature = &c.AI.Temperature
	}
	if opCfg.MaxTokens == nil {
		opCfg.MaxTokens = &c.AI.MaxTokens
	}
}

// GetFeedbackConfig returns the AI configuration for screening-feedback
// generation with fallback to global config
func (c *Config) GetFeedbackConfig() OperationAIConfig {
	config := c.AI.Feedback
	c.applyOperationDefaults(&config)
	return config
}

// GetQuestionsConfig returns the AI configuration for interview-question
// generation with fallback to global config
func (c *Config) GetQuestionsConfig() OperationAIConfig {
	config := c.AI.Questions
	c.applyOperationDefaults(&config)
	return config
}

// GetPostingConfig returns the AI configuration for job-posting generation
// with fallback to global config
func (c *Config) GetPostingConfig() OperationAIConfig {
	config := c.AI.Posting
	c.applyOperationDefaults(&config)
	return config
}
