package template

// modern-floating skips the modal overlay entirely: channels fan out in a
// floating column above the launcher button.
var modernFloatingTemplate = Definition{
	ID:          "modern-floating",
	Name:        "Modern Floating",
	Description: "Channels fan out above the button without a modal overlay.",
	Variant: Variant{
		ClassPrefix: "fcwf",
		IconSet:     "svg",
	},
	HTML: `<div class="fcwf-root fcwf-pos-{{POSITION}}" id="{{CONTAINER_ID}}" data-widget-id="{{WIDGET_ID}}">
  <div class="fcwf-modal" style="{{MODAL_ALIGNMENT_STYLE}}">
    <div class="fcwf-modal-content" style="{{MODAL_CONTENT_POSITION_STYLE}}">
      <div class="fcwf-modal-header">
        <span class="fcwf-greeting">{{GREETING_MESSAGE}}</span>
      </div>
      {{VIDEO_MARKUP}}
      <div class="fcwf-channels" data-count="{{CHANNEL_COUNT}}">{{CHANNELS_MARKUP}}</div>
      <div class="fcwf-empty" style="display: {{EMPTY_STATE_DISPLAY}};">No contact channels configured yet.</div>
    </div>
  </div>
  <div class="fcwf-tooltip fcwf-tooltip-{{TOOLTIP_POSITION}}" style="{{TOOLTIP_POSITION_STYLE}}">{{TOOLTIP_TEXT}}</div>
  <button class="fcwf-button" type="button" aria-label="{{TOOLTIP_TEXT}}">{{BUTTON_CONTENT}}</button>
</div>`,
	CSS: `.fcwf-root {
  position: fixed;
  bottom: 20px;
  {{POSITION_STYLE}}
  z-index: 999999;
  font-family: "Inter", -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
}
.fcwf-button {
  width: {{BUTTON_SIZE}}px;
  height: {{BUTTON_SIZE}}px;
  border-radius: 50%;
  border: none;
  cursor: pointer;
  background: {{BUTTON_COLOR}};
  color: #fff;
  display: flex;
  align-items: center;
  justify-content: center;
  box-shadow: 0 6px 20px rgba(0, 0, 0, 0.28);
  transition: transform 0.25s cubic-bezier(0.34, 1.56, 0.64, 1);
  overflow: hidden;
  padding: 0;
}
.fcwf-root.fcwf-open .fcwf-button { transform: rotate(135deg); }
.fcwf-glyph { font-size: {{ICON_SIZE}}px; line-height: 1; }
.fcwf-svg { width: {{ICON_SIZE}}px; height: {{ICON_SIZE}}px; fill: currentColor; }
.fcwf-button-icon-img { width: {{ICON_SIZE}}px; height: {{ICON_SIZE}}px; object-fit: contain; }
.fcwf-button-video { width: 100%; height: 100%; object-fit: cover; border-radius: 50%; }
.fcwf-tooltip {
  position: absolute;
  {{TOOLTIP_DEFAULT_VISIBILITY}}
  background: #0f172a;
  color: #f8fafc;
  padding: 6px 10px;
  border-radius: 6px;
  font-size: 12px;
  white-space: nowrap;
  pointer-events: none;
  transition: opacity 0.2s ease;
}
.fcwf-root:hover .fcwf-tooltip { {{TOOLTIP_HOVER_VISIBILITY}} }
.fcwf-root.fcwf-open .fcwf-tooltip { opacity: 0; visibility: hidden; }
.fcwf-modal {
  position: absolute;
  bottom: {{CHANNEL_BOTTOM_OFFSET}}px;
  display: none;
  width: max-content;
}
.fcwf-pos-right .fcwf-modal { right: 0; }
.fcwf-pos-left .fcwf-modal { left: 0; }
.fcwf-pos-center .fcwf-modal { left: 50%; transform: translateX(-50%); }
.fcwf-root.fcwf-open .fcwf-modal { display: block; }
.fcwf-modal-content {
  display: flex;
  flex-direction: column;
  align-items: stretch;
  gap: 8px;
}
.fcwf-modal-header {
  background: #0f172a;
  color: #f8fafc;
  border-radius: 10px;
  padding: 10px 14px;
  font-size: 13px;
  box-shadow: 0 6px 18px rgba(15, 23, 42, 0.3);
}
.fcwf-channels {
  display: flex;
  flex-direction: column;
  align-items: stretch;
  gap: {{CHANNEL_GAP}}px;
}
.fcwf-channel {
  display: flex;
  align-items: center;
  gap: 10px;
  padding: 10px 14px;
  border-radius: 999px;
  color: #fff;
  text-decoration: none;
  cursor: pointer;
  font-size: 13px;
  font-weight: 500;
  box-shadow: 0 4px 14px rgba(15, 23, 42, 0.25);
  animation: fcwf-rise 0.25s ease both;
}
.fcwf-channel:nth-child(1) { animation-delay: 0.03s; }
.fcwf-channel:nth-child(2) { animation-delay: 0.06s; }
.fcwf-channel:nth-child(3) { animation-delay: 0.09s; }
.fcwf-channel:nth-child(4) { animation-delay: 0.12s; }
.fcwf-channel:nth-child(5) { animation-delay: 0.15s; }
@keyframes fcwf-rise {
  from { opacity: 0; transform: translateY(8px); }
  to { opacity: 1; transform: translateY(0); }
}
.fcwf-channel:hover { filter: brightness(1.1); }
.fcwf-channel-icon { display: inline-flex; align-items: center; }
.fcwf-channel-icon svg { width: 17px; height: 17px; fill: currentColor; }
.fcwf-channel-icon img { width: 19px; height: 19px; object-fit: contain; }
.fcwf-channel-label { flex: 1; }
.fcwf-group { position: relative; }
.fcwf-group-trigger {
  display: flex;
  align-items: center;
  gap: 10px;
  width: 100%;
  padding: 10px 14px;
  border: none;
  border-radius: 999px;
  color: #fff;
  cursor: pointer;
  font-size: 13px;
  font-weight: 500;
  text-align: left;
  box-shadow: 0 4px 14px rgba(15, 23, 42, 0.25);
}
.fcwf-caret { margin-left: auto; transition: transform 0.2s ease; }
.fcwf-group.fcwf-open .fcwf-caret { transform: rotate(180deg); }
.fcwf-dropdown {
  display: none;
  flex-direction: column;
  gap: 6px;
  margin-top: 6px;
  padding: 8px;
  border-radius: 14px;
  background: #ffffff;
  box-shadow: 0 8px 24px rgba(15, 23, 42, 0.2);
}
.fcwf-group.fcwf-open .fcwf-dropdown { display: flex; }
.fcwf-dropdown-item {
  display: flex;
  align-items: center;
  gap: 9px;
  padding: 8px 11px;
  border-radius: 999px;
  color: #0f172a;
  font-size: 12px;
  cursor: pointer;
  text-decoration: none;
}
.fcwf-dropdown-item:hover { background: #f1f5f9; }
.fcwf-empty {
  background: #ffffff;
  border-radius: 10px;
  padding: 12px 14px;
  text-align: center;
  color: #64748b;
  font-size: 12px;
  box-shadow: 0 4px 14px rgba(15, 23, 42, 0.18);
}
.fcwf-video { margin-bottom: 4px; }
.fcwf-video video { width: 220px; border-radius: 10px; display: block; box-shadow: 0 6px 18px rgba(15, 23, 42, 0.25); }
.fcwf-video-top { display: flex; align-items: flex-start; }
.fcwf-video-center { display: flex; align-items: center; }
.fcwf-video-bottom { display: flex; align-items: flex-end; }
@media (max-width: 480px) {
  .fcwf-button { width: {{BUTTON_SIZE_MOBILE}}px; height: {{BUTTON_SIZE_MOBILE}}px; }
  .fcwf-svg { width: {{ICON_SIZE_MOBILE}}px; height: {{ICON_SIZE_MOBILE}}px; }
  .fcwf-button-icon-img { width: {{ICON_SIZE_MOBILE}}px; height: {{ICON_SIZE_MOBILE}}px; }
  .fcwf-channels { gap: {{CHANNEL_GAP_MOBILE}}px; }
}`,
	JS: `var root = document.getElementById('{{CONTAINER_ID}}');
if (!root) { return; }
var button = root.querySelector('.fcwf-button');
var tooltipText = '{{TOOLTIP_TEXT_JS}}';
var openGroup = null;

function closeGroup() {
  if (openGroup) {
    openGroup.classList.remove('fcwf-open');
    openGroup = null;
  }
}

function toggleGroup(group) {
  if (openGroup === group) {
    closeGroup();
    return;
  }
  closeGroup();
  group.classList.add('fcwf-open');
  openGroup = group;
}

button.addEventListener('click', function () {
  root.classList.toggle('fcwf-open');
  closeGroup();
});
if (tooltipText) { button.setAttribute('title', tooltipText); }
document.addEventListener('keydown', function (ev) {
  if (ev.key === 'Escape') {
    root.classList.remove('fcwf-open');
    closeGroup();
  }
});
document.addEventListener('click', function (ev) {
  if (!root.contains(ev.target)) {
    root.classList.remove('fcwf-open');
    closeGroup();
  }
});
Array.prototype.forEach.call(root.querySelectorAll('[data-fcwf-url]'), function (el) {
  el.addEventListener('click', function (ev) {
    ev.preventDefault();
    window.{{OPENER_NAME}}(el.getAttribute('data-fcwf-url'));
  });
});
Array.prototype.forEach.call(root.querySelectorAll('[data-fcwf-dropdown]'), function (trigger) {
  trigger.addEventListener('click', function (ev) {
    ev.stopPropagation();
    toggleGroup(trigger.closest('.fcwf-group'));
  });
});`,
}
