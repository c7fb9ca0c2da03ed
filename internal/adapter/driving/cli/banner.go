package cli

import (
	"fmt"

	"github.com/skytrade/uav-volume-dashboard-go/pkg/console"
	"github.com/skytrade/uav-volume-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         _   _   ___  __   __  __     __    _                       
        | | | | / _ \ \ \ / /  \ \   / /__ | |_   _ _ __ ___   ___  
        | | | |/ /_\ \ \ V /    \ \ / / _ \| | | | | '_ ' _ \ / _ \ 
        | |_| ||  _  |  \ /      \ V / (_) | | |_| | | | | | |  __/ 
         \___/ |_| |_|   V        \_/ \___/|_|\__,_|_| |_| |_|\___| 
        `
	fmt.Println(console.BrightCyan(banner))

	formattedVersion := version.FormatVersion()
	if versionStr != "" && versionStr != version.Version {
		formattedVersion = versionStr
	}
	fmt.Println(console.BrightMagenta(fmt.Sprintf("UAV Volume Dashboard CLI (v%s)", formattedVersion)))
}
