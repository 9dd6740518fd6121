package runner

import "github.com/projectdiscovery/gologger"

var banner = `
   _____      _____  ___  ____  _  __
  / ___/ | /| / / _ \/ _ \/ __ \| |/_/
 (__  )| |/ |/ /  __/  __/ /_/ />  <
/____/ |__/|__/\___/\___/ .___/_/|_|
                        /_/         ` + version

const version = `v0.0.1`

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}
