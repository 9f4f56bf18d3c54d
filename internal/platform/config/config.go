package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ModeDev     = "dev"
	ModeRelease = "release"

	AssemblerCompose = "compose"
	AssemblerMerge   = "merge"
)

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type Certs struct {
	Cert string `yaml:"cert"`
	Key  string `yaml:"key"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	TLS         bool     `yaml:"tls"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// PDFConfig: 納品書PDF生成まわり
type PDFConfig struct {
	FontPath   string `yaml:"font_path"`   // 空なら組み込みフォント（開発用、和文グリフなし）
	FontFamily string `yaml:"font_family"` // fpdf に登録するファミリ名
	RequireCJK bool   `yaml:"require_cjk"` // 和文グリフが無いフォントなら起動失敗にする
	Assembler  string `yaml:"assembler"`   // compose | merge
	Workers    int    `yaml:"workers"`     // merge 時の並列レンダリング数
}

type CompanyConfig struct {
	Path        string `yaml:"path"`
	FillMissing bool   `yaml:"fill_missing"` // 納品書で company_info 省略時に登録済みプロファイルを使う
}

type AuthConfig struct {
	Enabled   bool   `yaml:"enabled"`
	JWTSecret string `yaml:"jwt_secret"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type Config struct {
	Version     string         `yaml:"version"`
	Mode        string         `yaml:"mode"`
	Server      ServerConfig   `yaml:"server"`
	DB          DatabaseConfig `yaml:"database"`
	Certificate Certs          `yaml:"certificate"`
	PDF         PDFConfig      `yaml:"pdf"`
	Company     CompanyConfig  `yaml:"company"`
	Auth        AuthConfig     `yaml:"auth"`
	SMTP        SMTPConfig     `yaml:"smtp"`
}

// Load: .env → yaml → 環境変数の上書き → デフォルト補完 → 検証
func Load(path string) (*Config, error) {
	// .env は無くてもよい
	_ = godotenv.Load()

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルの読み込み失敗: %w", err)
	}
	cfg, err := Parse(buf)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Parse(buf []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("設定ファイルのパース失敗: %w", err)
	}
	return &cfg, nil
}

// 秘密情報は環境変数（.env 含む）を優先
func (c *Config) applyEnv() {
	if v := os.Getenv("SALES_DB_PASSWORD"); v != "" {
		c.DB.Password = v
	}
	if v := os.Getenv("SALES_JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("SALES_SMTP_PASSWORD"); v != "" {
		c.SMTP.Password = v
	}
	if v := os.Getenv("SALES_FONT_PATH"); v != "" {
		c.PDF.FontPath = v
	}
	if v := os.Getenv("SALES_PDF_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.PDF.Workers = n
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8443"
	}
	if c.Mode == ModeDev && len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"http://localhost:3000"}
	}
	if c.PDF.FontFamily == "" {
		c.PDF.FontFamily = "gothic"
	}
	if c.PDF.Assembler == "" {
		c.PDF.Assembler = AssemblerCompose
	}
	if c.PDF.Workers <= 0 {
		c.PDF.Workers = 4
	}
	if c.Company.Path == "" {
		c.Company.Path = "data/company.json"
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}
}

func (c *Config) Validate() error {
	if c.Mode != ModeDev && c.Mode != ModeRelease {
		return fmt.Errorf("mode は dev か release を指定してください: %q", c.Mode)
	}
	if c.PDF.Assembler != AssemblerCompose && c.PDF.Assembler != AssemblerMerge {
		return fmt.Errorf("pdf.assembler は compose か merge を指定してください: %q", c.PDF.Assembler)
	}
	// release では和文フォントの指定とグリフ検査を必須にする
	if c.Mode == ModeRelease {
		if c.PDF.FontPath == "" {
			return fmt.Errorf("release では pdf.font_path（SALES_FONT_PATH）に和文フォントを指定してください")
		}
		if !c.PDF.RequireCJK {
			return fmt.Errorf("release では pdf.require_cjk を true にしてください")
		}
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.enabled の場合 jwt_secret（SALES_JWT_SECRET）が必要です")
	}
	return nil
}
