package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/vendalytics/bling-lucro-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$$  /$$ /$$                           /$$
        | $$__  $$| $$|__/                          | $$
        | $$  \ $$| $$ /$$ /$$$$$$$   /$$$$$$       | $$       /$$   /$$  /$$$$$$$  /$$$$$$   /$$$$$$
        | $$$$$$$ | $$| $$| $$__  $$ /$$__  $$      | $$      | $$  | $$ /$$_____/ /$$__  $$ /$$__  $$
        | $$__  $$| $$| $$| $$  \ $$| $$  \ $$      | $$      | $$  | $$| $$      | $$  \__/| $$  \ $$
        | $$  \ $$| $$| $$| $$  | $$| $$  | $$      | $$      | $$  | $$| $$      | $$      | $$  | $$
        | $$$$$$$/| $$| $$| $$  | $$|  $$$$$$$      | $$$$$$$$|  $$$$$$/|  $$$$$$$| $$      |  $$$$$$/
        |_______/ |__/|__/|__/  |__/ \____  $$      |________/ \______/  \_______/|__/       \______/
                                     /$$  \ $$
                                    |  $$$$$$/
                                     \______/
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Bling Lucro CLI (v%s)", formattedVersion)))
}
