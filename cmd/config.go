package cmd

import "github.com/spf13/viper"

func settingDefaultConfig() {
	// Enable automatic environment variable binding
	viper.AutomaticEnv()

	// Map environment variables to Viper keys for the LLM provider
	viper.BindEnv("groq.api_key", "GROQ_API_KEY")
	viper.BindEnv("groq.base_url", "GROQ_BASE_URL")
	viper.BindEnv("groq.model", "GROQ_MODEL")

	// Map environment variables to Viper keys for the embedding provider
	viper.BindEnv("embedding.provider", "EMBEDDING_PROVIDER")
	viper.BindEnv("embedding.base_url", "EMBEDDING_BASE_URL")
	viper.BindEnv("embedding.api_key", "EMBEDDING_API_KEY")
	viper.BindEnv("embedding.model", "EMBEDDING_MODEL")

	// Map environment variables to Viper keys for storage and server
	viper.BindEnv("index.dir", "INDEX_DIR")
	viper.BindEnv("upload.dir", "UPLOAD_DIR")
	viper.BindEnv("rag.chunk_size", "RAG_CHUNK_SIZE")
	viper.BindEnv("rag.chunk_overlap", "RAG_CHUNK_OVERLAP")
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT")

	// Set default values for the LLM provider
	viper.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	viper.SetDefault("groq.model", "llama3-70b-8192")

	// Set default values for the embedding provider
	viper.SetDefault("embedding.provider", "ollama")
	viper.SetDefault("embedding.base_url", "http://localhost:11434")
	viper.SetDefault("embedding.model", "nomic-embed-text")

	// Set default values for storage and server
	viper.SetDefault("index.dir", "index_store")
	viper.SetDefault("upload.dir", "uploaded_pdfs")
	viper.SetDefault("rag.chunk_size", 1000)
	viper.SetDefault("rag.chunk_overlap", 200)
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.shutdown_timeout", "5s")
}
